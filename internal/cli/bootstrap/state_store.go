package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"Catalogue/internal/cli/repo"
	reposqlite "Catalogue/internal/cli/repo/sqlite"
	"Catalogue/internal/config"
)

// ClientDBPath возвращает путь к локальной БД: из конфига, затем из CLIENT_DB_PATH,
// иначе в пользовательском каталоге конфигурации.
func ClientDBPath(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.ClientDBPath != "" {
		return cfg.ClientDBPath, nil
	}
	if p := os.Getenv("CLIENT_DB_PATH"); p != "" {
		return p, nil
	}
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, "Catalogue", "ui.sqlite"), nil
}

// OpenStateStore открывает локальное хранилище состояния, выполняет миграции
// и возвращает (store, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenStateStore(cfg *config.Config) (repo.StateStore, func() error, error) {
	path, err := ClientDBPath(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve client db path: %w", err)
	}
	s, err := reposqlite.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open client db: %w", err)
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close()
		return nil, nil, fmt.Errorf("migrate client db: %w", err)
	}
	cleanup := func() error { return s.Close() }
	return s, cleanup, nil
}
