package history_repo

import (
	"context"
	"sync"

	"game_wheel/internal/model"
	"game_wheel/internal/repository"
)

// memoryRepo - скользящее окно раундов в памяти процесса, когда Redis не настроен
type memoryRepo struct {
	mtx     sync.RWMutex
	records []model.RoundRecord
	size    int
}

func NewMemoryHistoryRepository(size int) repository.HistoryRepository {
	return &memoryRepo{
		records: make([]model.RoundRecord, 0),
		size:    size,
	}
}

func (r *memoryRepo) Append(_ context.Context, record model.RoundRecord) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.records = append(r.records, record)
	// окно переполнено - выкидываем самые старые
	if r.size > 0 && len(r.records) > r.size {
		r.records = r.records[len(r.records)-r.size:]
	}

	return nil
}

func (r *memoryRepo) Recent(_ context.Context, limit int) ([]model.RoundRecord, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	n := len(r.records)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]model.RoundRecord, 0, n)
	for i := len(r.records) - 1; i >= len(r.records)-n; i-- {
		out = append(out, r.records[i])
	}

	return out, nil
}
