package repo

import (
	"Catalogue/internal/model"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
// Отсутствие записи сигнализируется через gorm.ErrRecordNotFound во всех реализациях.
type ItemRepository interface {
	// Create сохраняет новую запись, назначая id и временные метки.
	Create(ctx context.Context, it *model.Item) error

	// GetByID возвращает запись по id.
	GetByID(ctx context.Context, id string) (*model.Item, error)

	// List возвращает записи, удовлетворяющие фильтру, в порядке сортировки фильтра.
	List(ctx context.Context, f model.ItemFilter) ([]model.Item, error)

	// Update применяет набор изменённых столбцов и возвращает актуальную запись.
	Update(ctx context.Context, id string, updates map[string]any) (*model.Item, error)

	// Categories возвращает уникальные категории по алфавиту.
	Categories(ctx context.Context) ([]string, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item поверх gorm.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

// now возвращает текущее время с точностью до микросекунд (столько хранит Postgres).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	ts := now()
	it.CreatedAt = ts
	it.UpdatedAt = ts
	if err := r.db.WithContext(ctx).Create(it).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&it).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return &it, nil
}

func (r *itemRepo) List(ctx context.Context, f model.ItemFilter) ([]model.Item, error) {
	f = f.Normalized()
	q := r.db.WithContext(ctx).Model(&model.Item{})
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		q = q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.FavoritesOnly {
		q = q.Where("favorite = ?", true)
	}

	items := make([]model.Item, 0)
	if err := q.Order(orderClause(f.Sort)).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *itemRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Item, error) {
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = now()
	}
	res := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *itemRepo) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &out).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func orderClause(k model.SortKey) string {
	switch model.ParseSort(string(k)) {
	case model.SortNameDesc:
		return "name DESC"
	case model.SortPriceAsc:
		return "price ASC"
	case model.SortPriceDesc:
		return "price DESC"
	case model.SortCreatedAtAsc:
		return "created_at ASC"
	case model.SortCreatedAtDesc:
		return "created_at DESC"
	default:
		return "name ASC"
	}
}

// escapeLike экранирует спецсимволы LIKE, чтобы % и _ в поиске совпадали буквально.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
