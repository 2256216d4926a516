package repo

import (
	"Catalogue/internal/model"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryItemRepo хранит записи в памяти по id.
// Фильтрация и сортировка выполняются теми же правилами, что и в SQL-реализации.
type memoryItemRepo struct {
	mu    sync.RWMutex
	items map[string]model.Item
}

var _ ItemRepository = (*memoryItemRepo)(nil)

// NewMemoryItemRepository создаёт пустое хранилище в памяти.
func NewMemoryItemRepository() ItemRepository {
	return &memoryItemRepo{items: make(map[string]model.Item)}
}

func (r *memoryItemRepo) Create(_ context.Context, it *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if _, exists := r.items[it.ID]; exists {
		return fmt.Errorf("create item: duplicate id %s", it.ID)
	}
	ts := now()
	it.CreatedAt = ts
	it.UpdatedAt = ts
	r.items[it.ID] = *it
	return nil
}

func (r *memoryItemRepo) GetByID(_ context.Context, id string) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &it, nil
}

func (r *memoryItemRepo) List(_ context.Context, f model.ItemFilter) ([]model.Item, error) {
	f = f.Normalized()

	r.mu.RLock()
	out := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	r.mu.RUnlock()

	model.SortItems(out, f.Sort)
	return out, nil
}

func (r *memoryItemRepo) Update(_ context.Context, id string, updates map[string]any) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if len(updates) == 0 {
		return &it, nil
	}
	for col, v := range updates {
		switch col {
		case "name":
			it.Name = v.(string)
		case "category":
			it.Category = v.(string)
		case "price":
			it.Price = v.(float64)
		case "favorite":
			it.Favorite = v.(bool)
		case "updated_at":
			it.UpdatedAt = v.(time.Time)
		default:
			return nil, fmt.Errorf("update item %s: unknown column %q", id, col)
		}
	}
	if _, ok := updates["updated_at"]; !ok {
		it.UpdatedAt = now()
	}
	r.items[id] = it
	return &it, nil
}

func (r *memoryItemRepo) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.items))
	out := make([]string, 0, len(r.items))
	for _, it := range r.items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out, nil
}
