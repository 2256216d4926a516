package service

import (
	"Catalogue/internal/cli/api"
	"Catalogue/internal/cli/model"
	"Catalogue/internal/cli/repo"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CatalogueAPI — операции сервера, которые нужны дашборду.
type CatalogueAPI interface {
	Items(ctx context.Context, q api.ItemsQuery) ([]model.Item, error)
	Categories(ctx context.Context) ([]string, error)
	Item(ctx context.Context, id string) (*model.Item, error)
	CreateItem(ctx context.Context, in api.NewItem) (api.MutationResult, error)
	UpdateItem(ctx context.Context, id string, p api.ItemPatch) (api.MutationResult, error)
}

var _ CatalogueAPI = (*api.Client)(nil)

// Dashboard — юзкейсы CLI: фильтры, выбор записи, избранное и форма создания.
// В режиме localFavorites избранное хранится только в локальной БД и на сервер не отправляется.
type Dashboard struct {
	api            CatalogueAPI
	store          repo.StateStore
	localFavorites bool
}

// NewDashboard конструктор дашборда
func NewDashboard(a CatalogueAPI, s repo.StateStore, localFavorites bool) *Dashboard {
	return &Dashboard{api: a, store: s, localFavorites: localFavorites}
}

// FilterPatch: nil-поля остаются прежними.
type FilterPatch struct {
	Search        *string
	Category      *string
	FavoritesOnly *bool
	Sort          *string
}

// View описывает результат обновления списка.
type View struct {
	State    model.UIState
	Items    []model.Item
	Selected *model.Item
}

// CreateForm хранит сырой ввод формы создания.
type CreateForm struct {
	Name     string
	Category string
	Price    string
	Favorite bool
}

// ValidateCreateForm проверяет форму до отправки на сервер.
func ValidateCreateForm(f CreateForm) (api.NewItem, error) {
	name := strings.TrimSpace(f.Name)
	category := strings.TrimSpace(f.Category)
	if name == "" || category == "" {
		return api.NewItem{}, ErrNameCategoryRequired
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return api.NewItem{}, ErrPriceInvalid
	}
	if price < 0 {
		return api.NewItem{}, ErrPriceNegative
	}
	return api.NewItem{Name: name, Category: category, Price: price, Favorite: f.Favorite}, nil
}

// StableSelection сохраняет выбор, если запись осталась в списке,
// иначе выбирает первую запись или ничего для пустого списка.
func StableSelection(items []model.Item, selectedID string) *model.Item {
	for i := range items {
		if items[i].ID == selectedID {
			return &items[i]
		}
	}
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

// ApplyPatch применяет изменения фильтров к состоянию.
func ApplyPatch(st model.UIState, p FilterPatch) (model.UIState, error) {
	if p.Search != nil {
		st.Search = *p.Search
	}
	if p.Category != nil {
		c := strings.TrimSpace(*p.Category)
		if c == model.AllCategories {
			c = ""
		}
		st.Category = c
	}
	if p.FavoritesOnly != nil {
		st.FavoritesOnly = *p.FavoritesOnly
	}
	if p.Sort != nil {
		s := strings.ToUpper(strings.TrimSpace(*p.Sort))
		if !model.IsValidSort(s) {
			return st, fmt.Errorf("unknown sort %q, expected one of %s", *p.Sort, strings.Join(model.SortOptions, ", "))
		}
		st.Sort = s
	}
	return st, nil
}

// Refresh применяет изменения фильтров, запрашивает список и поддерживает стабильный выбор.
func (d *Dashboard) Refresh(ctx context.Context, p FilterPatch) (View, error) {
	st, err := d.store.LoadState()
	if err != nil {
		return View{}, err
	}
	st, err = ApplyPatch(st, p)
	if err != nil {
		return View{}, err
	}

	items, err := d.list(ctx, st)
	if err != nil {
		return View{}, err
	}

	sel := StableSelection(items, st.SelectedID)
	st.SelectedID = ""
	if sel != nil {
		st.SelectedID = sel.ID
	}
	if err := d.store.SaveState(st); err != nil {
		return View{}, err
	}
	return View{State: st, Items: items, Selected: sel}, nil
}

func (d *Dashboard) list(ctx context.Context, st model.UIState) ([]model.Item, error) {
	q := api.ItemsQuery{Search: st.Search, Category: st.Category, FavoritesOnly: st.FavoritesOnly, Sort: st.Sort}
	if d.localFavorites {
		q.FavoritesOnly = false
	}
	items, err := d.api.Items(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrLoadFailed, err)
	}
	if !d.localFavorites {
		return items, nil
	}

	favs, err := d.store.LocalFavorites()
	if err != nil {
		return nil, err
	}
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		it.Favorite = favs[it.ID]
		if st.FavoritesOnly && !it.Favorite {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Categories возвращает варианты выбора категории: All, затем категории сервера.
func (d *Dashboard) Categories(ctx context.Context) ([]string, error) {
	cats, err := d.api.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrLoadFailed, err)
	}
	return append([]string{model.AllCategories}, cats...), nil
}

// Show возвращает запись по id или выбранную запись.
func (d *Dashboard) Show(ctx context.Context, id string) (*model.Item, error) {
	id, err := d.resolveID(id)
	if err != nil {
		return nil, err
	}
	it, err := d.api.Item(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrLoadFailed, err)
	}
	if it == nil {
		return nil, ErrItemNotFound
	}
	if d.localFavorites {
		favs, err := d.store.LocalFavorites()
		if err != nil {
			return nil, err
		}
		it.Favorite = favs[it.ID]
	}
	return it, nil
}

// Select запоминает выбранную запись, если она существует.
func (d *Dashboard) Select(ctx context.Context, id string) (*model.Item, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNoSelection
	}
	it, err := d.Show(ctx, id)
	if err != nil {
		return nil, err
	}
	st, err := d.store.LoadState()
	if err != nil {
		return nil, err
	}
	st.SelectedID = it.ID
	if err := d.store.SaveState(st); err != nil {
		return nil, err
	}
	return it, nil
}

// ToggleFavorite переключает избранное для id (или выбранной записи) и перечитывает список.
func (d *Dashboard) ToggleFavorite(ctx context.Context, id string) (bool, View, error) {
	id, err := d.resolveID(id)
	if err != nil {
		return false, View{}, err
	}

	var on bool
	if d.localFavorites {
		on, err = d.store.ToggleLocalFavorite(id)
		if err != nil {
			return false, View{}, err
		}
	} else {
		cur, err := d.api.Item(ctx, id)
		if err != nil {
			return false, View{}, fmt.Errorf("%w (%v)", ErrUpdateFailed, err)
		}
		if cur == nil {
			return false, View{}, ErrItemNotFound
		}
		next := !cur.Favorite
		res, err := d.api.UpdateItem(ctx, id, api.ItemPatch{Favorite: &next})
		if err != nil {
			return false, View{}, fmt.Errorf("%w (%v)", ErrUpdateFailed, err)
		}
		if len(res.Errors) > 0 {
			return false, View{}, &ServerError{Messages: res.Errors}
		}
		on = res.Item != nil && res.Item.Favorite
	}

	v, err := d.Refresh(ctx, FilterPatch{})
	if err != nil {
		return on, View{}, err
	}
	return on, v, nil
}

// Create проверяет форму, создаёт запись на сервере и выбирает её.
func (d *Dashboard) Create(ctx context.Context, f CreateForm) (*model.Item, error) {
	in, err := ValidateCreateForm(f)
	if err != nil {
		return nil, err
	}
	if d.localFavorites {
		// избранное в этом режиме только локальное
		in.Favorite = false
	}
	res, err := d.api.CreateItem(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrCreateFailed, err)
	}
	if len(res.Errors) > 0 {
		return nil, &ServerError{Messages: res.Errors}
	}
	if res.Item == nil {
		return nil, ErrCreateFailed
	}
	if d.localFavorites && f.Favorite {
		if _, err := d.store.ToggleLocalFavorite(res.Item.ID); err != nil {
			return nil, err
		}
		res.Item.Favorite = true
	}

	st, err := d.store.LoadState()
	if err != nil {
		return nil, err
	}
	st.SelectedID = res.Item.ID
	if err := d.store.SaveState(st); err != nil {
		return nil, err
	}
	return res.Item, nil
}

// Reset сбрасывает фильтры и выбор.
func (d *Dashboard) Reset() error {
	return d.store.SaveState(model.DefaultUIState())
}

func (d *Dashboard) resolveID(id string) (string, error) {
	if id = strings.TrimSpace(id); id != "" {
		return id, nil
	}
	st, err := d.store.LoadState()
	if err != nil {
		return "", err
	}
	if st.SelectedID == "" {
		return "", ErrNoSelection
	}
	return st.SelectedID, nil
}
