package repo

import "Catalogue/internal/cli/model"

// StateStore определяет порт доступа к локальному состоянию дашборда.
type StateStore interface {
	// LoadState возвращает сохранённое состояние или состояние по умолчанию.
	LoadState() (model.UIState, error)

	// SaveState сохраняет состояние целиком.
	SaveState(st model.UIState) error

	// LocalFavorites возвращает множество id, отмеченных локально.
	LocalFavorites() (map[string]bool, error)

	// ToggleLocalFavorite переключает отметку и возвращает новое значение.
	ToggleLocalFavorite(id string) (bool, error)
}
