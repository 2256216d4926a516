package service

import (
	"Catalogue/internal/model"
	"Catalogue/internal/repo"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	msgNameBlank     = "Name can't be blank"
	msgCategoryBlank = "Category can't be blank"
	msgPriceBlank    = "Price can't be blank"
	msgPriceNegative = "Price must be greater than or equal to 0"
	msgPriceNaN      = "Price is not a number"
	msgPriceTooLarge = "Price must be less than 100000000"
)

// ItemService инкапсулирует бизнес-логику работы с Item:
// валидацию, частичное обновление и выборку по фильтрам.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger}
}

// CreateItemInput — поля формы создания. Price=nil означает «не указана».
type CreateItemInput struct {
	Name     string
	Category string
	Price    *float64
	Favorite bool
}

// UpdateItemInput — частичное обновление: nil-поле не меняется.
type UpdateItemInput struct {
	Name     *string
	Category *string
	Price    *float64
	Favorite *bool
}

// IsEmpty сообщает, что ни одно поле не передано.
func (in UpdateItemInput) IsEmpty() bool {
	return in.Name == nil && in.Category == nil && in.Price == nil && in.Favorite == nil
}

// Create проверяет поля и сохраняет новую запись.
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*model.Item, error) {
	it := &model.Item{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Favorite: in.Favorite,
	}
	var msgs []string
	if it.Name == "" {
		msgs = append(msgs, msgNameBlank)
	}
	if it.Category == "" {
		msgs = append(msgs, msgCategoryBlank)
	}
	if in.Price == nil {
		msgs = append(msgs, msgPriceBlank)
	} else {
		msgs = append(msgs, validatePrice(*in.Price)...)
		it.Price = model.RoundPrice(*in.Price)
	}
	if len(msgs) > 0 {
		s.logger.Infow("Create: validation failed", "errors", msgs)
		return nil, &ValidationError{Messages: msgs}
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	s.logger.Infow("Item created", "id", it.ID, "name", it.Name)
	return it, nil
}

// Update применяет только переданные поля. Пустой ввод возвращает запись без изменений.
func (s *ItemService) Update(ctx context.Context, id string, in UpdateItemInput) (*model.Item, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if in.IsEmpty() {
		return cur, nil
	}

	updates := make(map[string]any, 4)
	var msgs []string
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			msgs = append(msgs, msgNameBlank)
		}
		updates["name"] = name
	}
	if in.Category != nil {
		cat := strings.TrimSpace(*in.Category)
		if cat == "" {
			msgs = append(msgs, msgCategoryBlank)
		}
		updates["category"] = cat
	}
	if in.Price != nil {
		msgs = append(msgs, validatePrice(*in.Price)...)
		updates["price"] = model.RoundPrice(*in.Price)
	}
	if in.Favorite != nil {
		updates["favorite"] = *in.Favorite
	}
	if len(msgs) > 0 {
		s.logger.Infow("Update: validation failed", "id", id, "errors", msgs)
		return nil, &ValidationError{Messages: msgs}
	}

	it, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	s.logger.Infow("Item updated", "id", id, "fields", len(updates))
	return it, nil
}

// List возвращает записи по фильтру.
func (s *ItemService) List(ctx context.Context, f model.ItemFilter) ([]model.Item, error) {
	return s.repo.List(ctx, f.Normalized())
}

// Categories — уникальные категории по алфавиту.
func (s *ItemService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// FindByID возвращает nil, nil если записи нет.
func (s *ItemService) FindByID(ctx context.Context, id string) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return it, nil
}

// SampleItems — стартовый набор каталога.
var SampleItems = []CreateItemInput{
	{Name: "Laptop", Category: "Electronics", Price: ptr(1200.0)},
	{Name: "Chair", Category: "Furniture", Price: ptr(150.0)},
	{Name: "Pen", Category: "Stationery", Price: ptr(3.0)},
	{Name: "Headphones", Category: "Electronics", Price: ptr(200.0)},
	{Name: "Notebook", Category: "Stationery", Price: ptr(5.0)},
}

// Seed создаёт отсутствующие (по имени) записи из SampleItems. Повторный вызов ничего не меняет.
func (s *ItemService) Seed(ctx context.Context) (int, error) {
	created := 0
	for _, in := range SampleItems {
		existing, err := s.repo.List(ctx, model.ItemFilter{Search: in.Name})
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", in.Name, err)
		}
		if containsName(existing, in.Name) {
			continue
		}
		if _, err := s.Create(ctx, in); err != nil {
			return created, fmt.Errorf("seed %s: %w", in.Name, err)
		}
		created++
	}
	s.logger.Infow("Seed finished", "created", created)
	return created, nil
}

func validatePrice(p float64) []string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return []string{msgPriceNaN}
	}
	if p < 0 {
		return []string{msgPriceNegative}
	}
	// numeric(10,2): после округления до центов не больше 99999999.99
	if model.RoundPrice(p) >= model.MaxPrice {
		return []string{msgPriceTooLarge}
	}
	return nil
}

func containsName(items []model.Item, name string) bool {
	for _, it := range items {
		if it.Name == name {
			return true
		}
	}
	return false
}

func ptr[T any](v T) *T { return &v }
