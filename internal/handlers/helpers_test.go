package handlers_test

import (
	"Catalogue/internal/config"
	"Catalogue/internal/handlers"
	"Catalogue/internal/model"
	"Catalogue/internal/repo"
	"Catalogue/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Local light mocks
type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *hMockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) List(ctx context.Context, f model.ItemFilter) ([]model.Item, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Item, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

func newRouter(t *testing.T, r repo.ItemRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{CORSOrigins: []string{"https://shop.example.com"}}
	logger := zap.NewNop().Sugar()
	h, err := handlers.NewHandler(service.NewItemService(r, logger), logger, cfg)
	require.NoError(t, err)
	return h.Router
}

// newSeededRouter собирает роутер поверх хранилища в памяти с демо-данными
func newSeededRouter(t *testing.T) (http.Handler, *service.ItemService) {
	t.Helper()
	logger := zap.NewNop().Sugar()
	svc := service.NewItemService(repo.NewMemoryItemRepository(), logger)
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)
	h, err := handlers.NewHandler(svc, logger, &config.Config{})
	require.NoError(t, err)
	return h.Router, svc
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
