package commands

import (
	"Catalogue/internal/cli/api"
	"Catalogue/internal/config"
	"Catalogue/internal/handlers"
	"Catalogue/internal/repo"
	itemsvc "Catalogue/internal/service"
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы локальная база создавалась в temp.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	db := filepath.Join(dir, "db", "ui.sqlite")
	t.Setenv("CLIENT_DB_PATH", db)
	return &config.Config{ServerURL: serverURL, ClientDBPath: db}
}

func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// newCatalogueServer поднимает настоящий сервер каталога поверх памяти с демо-данными.
func newCatalogueServer(t *testing.T) string {
	t.Helper()
	logger := zap.NewNop().Sugar()
	svc := itemsvc.NewItemService(repo.NewMemoryItemRepository(), logger)
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)
	h, err := handlers.NewHandler(svc, logger, &config.Config{})
	require.NoError(t, err)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	return ts.URL
}

// itemID находит id записи по имени через API.
func itemID(t *testing.T, serverURL, name string) string {
	t.Helper()
	items, err := api.NewClient(serverURL).Items(context.Background(), api.ItemsQuery{Search: name})
	require.NoError(t, err)
	for _, it := range items {
		if it.Name == name {
			return it.ID
		}
	}
	t.Fatalf("item %q not found", name)
	return ""
}

func run(t *testing.T, cfg *config.Config, c Command, args ...string) (string, error) {
	t.Helper()
	var err error
	out := withStdoutCapture(t, func() { err = c.Run(context.Background(), cfg, args) })
	return out, err
}
