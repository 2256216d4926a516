package model

import (
	"sort"
	"strings"
)

// SortKey задаёт порядок сортировки списка.
type SortKey string

const (
	SortNameAsc       SortKey = "NAME_ASC"
	SortNameDesc      SortKey = "NAME_DESC"
	SortPriceAsc      SortKey = "PRICE_ASC"
	SortPriceDesc     SortKey = "PRICE_DESC"
	SortCreatedAtAsc  SortKey = "CREATED_AT_ASC"
	SortCreatedAtDesc SortKey = "CREATED_AT_DESC"

	DefaultSort = SortNameAsc
)

// SortKeys перечисляет ключи в порядке, в котором их показывает клиент.
var SortKeys = []SortKey{
	SortNameAsc,
	SortNameDesc,
	SortPriceAsc,
	SortPriceDesc,
	SortCreatedAtAsc,
	SortCreatedAtDesc,
}

// ParseSort возвращает ключ сортировки; неизвестные и пустые значения дают NAME_ASC.
func ParseSort(s string) SortKey {
	k := SortKey(strings.TrimSpace(s))
	for _, known := range SortKeys {
		if k == known {
			return k
		}
	}
	return DefaultSort
}

// ItemFilter — параметры выборки списка. Условия объединяются через AND.
type ItemFilter struct {
	Search        string
	Category      string
	FavoritesOnly bool
	Sort          SortKey
}

// Normalized приводит фильтр к каноническому виду:
// поисковая строка обрезается и переводится в нижний регистр,
// пустая (из пробелов) категория означает отсутствие фильтра.
func (f ItemFilter) Normalized() ItemFilter {
	out := f
	out.Search = strings.ToLower(strings.TrimSpace(f.Search))
	if strings.TrimSpace(f.Category) == "" {
		out.Category = ""
	}
	out.Sort = ParseSort(string(f.Sort))
	return out
}

// Match проверяет элемент против нормализованного фильтра.
func (f ItemFilter) Match(it Item) bool {
	if f.Search != "" {
		if !strings.Contains(strings.ToLower(it.Name), f.Search) &&
			!strings.Contains(strings.ToLower(it.Category), f.Search) {
			return false
		}
	}
	if f.Category != "" && it.Category != f.Category {
		return false
	}
	if f.FavoritesOnly && !it.Favorite {
		return false
	}
	return true
}

// SortItems упорядочивает элементы по ключу, при равенстве по id по возрастанию.
func SortItems(items []Item, key SortKey) {
	key = ParseSort(string(key))
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch key {
		case SortNameDesc:
			if a.Name != b.Name {
				return a.Name > b.Name
			}
		case SortPriceAsc:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case SortPriceDesc:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		case SortCreatedAtAsc:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		case SortCreatedAtDesc:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		default:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		}
		return a.ID < b.ID
	})
}
