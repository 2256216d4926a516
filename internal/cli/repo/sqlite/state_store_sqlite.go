package sqlite

import (
	"Catalogue/internal/cli/model"
	"Catalogue/internal/cli/repo"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// StateStoreSQLite — локальное состояние дашборда в файле SQLite.
type StateStoreSQLite struct {
	db *sql.DB
}

var _ repo.StateStore = (*StateStoreSQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД клиента.
func Open(path string) (*StateStoreSQLite, error) {
	if path == "" {
		return nil, errors.New("empty client db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &StateStoreSQLite{db: db}, nil
}

// Close закрывает соединение с БД.
func (s *StateStoreSQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц.
func (s *StateStoreSQLite) Migrate() error {
	return migrate(s.db)
}

// LoadState возвращает сохранённое состояние или DefaultUIState, если строки ещё нет.
func (s *StateStoreSQLite) LoadState() (model.UIState, error) {
	var st model.UIState
	var favInt int
	err := s.db.QueryRow(`SELECT search, category, favorites_only, sort, selected_id FROM ui_state WHERE id = 1`).
		Scan(&st.Search, &st.Category, &favInt, &st.Sort, &st.SelectedID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultUIState(), nil
	}
	if err != nil {
		return model.UIState{}, err
	}
	st.FavoritesOnly = favInt != 0
	if !model.IsValidSort(st.Sort) {
		st.Sort = model.SortNameAsc
	}
	return st, nil
}

// SaveState сохраняет состояние (upsert единственной строки).
func (s *StateStoreSQLite) SaveState(st model.UIState) error {
	_, err := s.db.Exec(`INSERT INTO ui_state(id, search, category, favorites_only, sort, selected_id, updated_at)
        VALUES(1, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            search = excluded.search,
            category = excluded.category,
            favorites_only = excluded.favorites_only,
            sort = excluded.sort,
            selected_id = excluded.selected_id,
            updated_at = excluded.updated_at`,
		st.Search, st.Category, boolToInt(st.FavoritesOnly), st.Sort, st.SelectedID, time.Now().Unix(),
	)
	return err
}

// LocalFavorites возвращает множество локально отмеченных id.
func (s *StateStoreSQLite) LocalFavorites() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT item_id FROM local_favorites`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

// ToggleLocalFavorite добавляет id в множество или удаляет его оттуда.
func (s *StateStoreSQLite) ToggleLocalFavorite(id string) (bool, error) {
	if id == "" {
		return false, errors.New("empty item id")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`DELETE FROM local_favorites WHERE item_id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	on := n == 0
	if on {
		if _, err := tx.Exec(`INSERT INTO local_favorites(item_id, created_at) VALUES(?, ?)`, id, time.Now().Unix()); err != nil {
			return false, err
		}
	}
	return on, tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
