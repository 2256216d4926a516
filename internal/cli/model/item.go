package model

import "time"

// Item — запись каталога в том виде, в каком её отдаёт сервер.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sort keys, как их понимает сервер.
const (
	SortNameAsc       = "NAME_ASC"
	SortNameDesc      = "NAME_DESC"
	SortPriceAsc      = "PRICE_ASC"
	SortPriceDesc     = "PRICE_DESC"
	SortCreatedAtAsc  = "CREATED_AT_ASC"
	SortCreatedAtDesc = "CREATED_AT_DESC"
)

// SortOptions в порядке показа.
var SortOptions = []string{
	SortNameAsc,
	SortNameDesc,
	SortPriceAsc,
	SortPriceDesc,
	SortCreatedAtAsc,
	SortCreatedAtDesc,
}

// AllCategories — пункт «без фильтра» в списке категорий.
const AllCategories = "All"

// UIState — состояние дашборда между запусками CLI.
type UIState struct {
	Search        string
	Category      string
	FavoritesOnly bool
	Sort          string
	SelectedID    string
}

// DefaultUIState возвращает состояние после reset.
func DefaultUIState() UIState {
	return UIState{Sort: SortNameAsc}
}

// IsValidSort проверяет ключ сортировки.
func IsValidSort(s string) bool {
	for _, o := range SortOptions {
		if o == s {
			return true
		}
	}
	return false
}
