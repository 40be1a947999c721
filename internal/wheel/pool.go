package wheel

import (
	"fmt"
	"strings"
)

// Pool - игры, которые ещё могут выпасть. Уменьшается на одну за спин.
type Pool struct {
	items []Item
}

// NewPool создаёт пул из полного списка игр
func NewPool(items []Item) (*Pool, error) {
	p := &Pool{}
	if err := p.Reset(items); err != nil {
		return nil, err
	}
	return p, nil
}

// Reset заменяет пул целиком. Порядок элементов сохраняется.
func (p *Pool) Reset(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("%w: empty name", ErrInvalidItem)
		}
		if it.Votes < 0 {
			return fmt.Errorf("%w: %q has negative votes", ErrInvalidItem, it.Name)
		}
		if _, ok := seen[it.Name]; ok {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidItem, it.Name)
		}
		seen[it.Name] = struct{}{}
	}

	p.items = append(make([]Item, 0, len(items)), items...)
	return nil
}

// Remove убирает игру из пула
func (p *Pool) Remove(name string) error {
	if len(p.items) <= 1 {
		return ErrPoolExhausted
	}
	for i, it := range p.items {
		if it.Name == name {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrItemNotFound, name)
}

// UpdateVotes переписывает голоса игр, которые ещё в пуле.
// Выбывшие и незнакомые игры пропускаются, порядок не меняется.
func (p *Pool) UpdateVotes(items []Item) error {
	votes := make(map[string]int, len(items))
	for _, it := range items {
		if it.Votes < 0 {
			return fmt.Errorf("%w: %q has negative votes", ErrInvalidItem, it.Name)
		}
		votes[it.Name] = it.Votes
	}

	for i := range p.items {
		if v, ok := votes[p.items[i].Name]; ok {
			p.items[i].Votes = v
		}
	}
	return nil
}

// IsFinished - остался ровно один элемент
func (p *Pool) IsFinished() bool {
	return len(p.items) == 1
}

func (p *Pool) Len() int {
	return len(p.items)
}

// Items возвращает копию оставшихся игр
func (p *Pool) Items() []Item {
	return append([]Item(nil), p.items...)
}
