package handlers

import (
	"Catalogue/internal/model"
	"Catalogue/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обслуживает REST-доступ к каталогу.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// CreateItemRequest — тело POST /api/items.
type CreateItemRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Favorite bool     `json:"favorite"`
}

// UpdateItemRequest — тело PATCH /api/items/{id}. Отсутствующие поля не меняются.
type UpdateItemRequest struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Favorite *bool    `json:"favorite,omitempty"`
}

// MutationResponse — результат мутации: item=null при ошибке, errors=[] при успехе.
type MutationResponse struct {
	Item   *model.Item `json:"item"`
	Errors []string    `json:"errors"`
}

// List список с фильтрами из query-параметров
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := model.ItemFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     model.SortKey(q.Get("sort")),
	}
	if v := q.Get("favoritesOnly"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.Logger.Warnw("List: invalid favoritesOnly", "value", v)
			http.Error(w, "invalid favoritesOnly", http.StatusBadRequest)
			return
		}
		f.FavoritesOnly = b
	}

	items, err := h.ItemService.List(r.Context(), f)
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get одна запись по id
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	it, err := h.ItemService.FindByID(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("Get: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if it == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Categories уникальные категории
func (h *ItemHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.ItemService.Categories(r.Context())
	if err != nil {
		h.Logger.Errorw("Categories: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// Create создание записи
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	it, err := h.ItemService.Create(r.Context(), service.CreateItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Favorite: req.Favorite,
	})
	h.writeMutation(w, "Create", http.StatusCreated, it, err)
}

// Update частичное обновление записи
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "id", id, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	it, err := h.ItemService.Update(r.Context(), id, service.UpdateItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Favorite: req.Favorite,
	})
	h.writeMutation(w, "Update", http.StatusOK, it, err)
}

func (h *ItemHandler) writeMutation(w http.ResponseWriter, op string, okStatus int, it *model.Item, err error) {
	msgs, ok := service.ErrorMessages(err)
	if !ok {
		h.Logger.Errorw(op+": service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := okStatus
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		status = http.StatusNotFound
	case err != nil:
		status = http.StatusUnprocessableEntity
	}
	resp := MutationResponse{Errors: msgs}
	if err == nil {
		resp.Item = it
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
