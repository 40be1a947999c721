package wheel

import "errors"

var (
	// ErrEmptyPool - колесо нельзя построить или крутить без элементов
	ErrEmptyPool = errors.New("wheel: empty pool")
	// ErrPoolExhausted - в пуле остался один элемент (или меньше), крутить больше нечего
	ErrPoolExhausted = errors.New("wheel: pool exhausted")
	// ErrItemNotFound - попытка удалить элемент, которого нет в пуле. Не фатальна.
	ErrItemNotFound = errors.New("wheel: item not found")
	// ErrInvalidItem - пустое или повторяющееся имя, отрицательные голоса
	ErrInvalidItem = errors.New("wheel: invalid item")
	// ErrInvalidParams - коэффициенты весов вне допустимого диапазона
	ErrInvalidParams = errors.New("wheel: invalid tuning parameters")
	// ErrSpinInProgress - колесо уже крутится
	ErrSpinInProgress = errors.New("wheel: spin in progress")
	// ErrAnimationRunning - аниматор уже ведёт анимацию
	ErrAnimationRunning = errors.New("wheel: animation already running")
)
