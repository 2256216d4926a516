package api

import (
	"Catalogue/internal/cli/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Client — GraphQL-клиент сервера каталога.
type Client struct {
	ServerURL string // например, http://localhost:8081
}

// NewClient создаёт клиента для сервера по базовому URL.
func NewClient(serverURL string) *Client {
	return &Client{ServerURL: strings.TrimRight(serverURL, "/")}
}

// ItemsQuery — параметры запроса items. Пустые значения не отправляются.
type ItemsQuery struct {
	Search        string
	Category      string
	FavoritesOnly bool
	Sort          string
}

// ItemPatch: nil-поля не отправляются.
type ItemPatch struct {
	Name     *string
	Category *string
	Price    *float64
	Favorite *bool
}

// NewItem содержит поля создания записи.
type NewItem struct {
	Name     string
	Category string
	Price    float64
	Favorite bool
}

// MutationResult — ответ мутации: Item=nil и непустой Errors при ошибке валидации.
type MutationResult struct {
	Item   *model.Item `json:"item"`
	Errors []string    `json:"errors"`
}

// ErrGraphQL — сервер вернул ошибки уровня GraphQL (не ошибки валидации).
var ErrGraphQL = errors.New("graphql error")

const itemFields = `id name category price favorite createdAt updatedAt`

const (
	itemsQuery = `query Items($search: String, $category: String, $favoritesOnly: Boolean, $sort: ItemSort) {
  items(search: $search, category: $category, favoritesOnly: $favoritesOnly, sort: $sort) { ` + itemFields + ` }
}`
	categoriesQuery = `query Categories { categories }`
	itemQuery       = `query Item($id: ID!) { item(id: $id) { ` + itemFields + ` } }`
	createMutation  = `mutation CreateItem($input: CreateItemInput!) {
  createItem(input: $input) { item { ` + itemFields + ` } errors }
}`
	updateMutation = `mutation UpdateItem($input: UpdateItemInput!) {
  updateItem(input: $input) { item { ` + itemFields + ` } errors }
}`
)

type gqlRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Items возвращает список по фильтрам.
func (c *Client) Items(ctx context.Context, q ItemsQuery) ([]model.Item, error) {
	vars := map[string]any{}
	if q.Search != "" {
		vars["search"] = q.Search
	}
	if q.Category != "" {
		vars["category"] = q.Category
	}
	if q.FavoritesOnly {
		vars["favoritesOnly"] = true
	}
	if q.Sort != "" {
		vars["sort"] = q.Sort
	}
	var out struct {
		Items []model.Item `json:"items"`
	}
	if err := c.do(ctx, "Items", itemsQuery, vars, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []model.Item{}
	}
	return out.Items, nil
}

// Categories возвращает уникальные категории.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, "Categories", categoriesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Item возвращает запись или nil, если её нет.
func (c *Client) Item(ctx context.Context, id string) (*model.Item, error) {
	var out struct {
		Item *model.Item `json:"item"`
	}
	if err := c.do(ctx, "Item", itemQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

// CreateItem вызывает мутацию createItem.
func (c *Client) CreateItem(ctx context.Context, in NewItem) (MutationResult, error) {
	input := map[string]any{
		"name":     in.Name,
		"category": in.Category,
		"price":    in.Price,
		"favorite": in.Favorite,
	}
	var out struct {
		CreateItem MutationResult `json:"createItem"`
	}
	if err := c.do(ctx, "CreateItem", createMutation, map[string]any{"input": input}, &out); err != nil {
		return MutationResult{}, err
	}
	return out.CreateItem, nil
}

// UpdateItem вызывает мутацию updateItem, передавая только заданные поля.
func (c *Client) UpdateItem(ctx context.Context, id string, p ItemPatch) (MutationResult, error) {
	input := map[string]any{"id": id}
	if p.Name != nil {
		input["name"] = *p.Name
	}
	if p.Category != nil {
		input["category"] = *p.Category
	}
	if p.Price != nil {
		input["price"] = *p.Price
	}
	if p.Favorite != nil {
		input["favorite"] = *p.Favorite
	}
	var out struct {
		UpdateItem MutationResult `json:"updateItem"`
	}
	if err := c.do(ctx, "UpdateItem", updateMutation, map[string]any{"input": input}, &out); err != nil {
		return MutationResult{}, err
	}
	return out.UpdateItem, nil
}

func (c *Client) do(ctx context.Context, op, query string, vars map[string]any, dst any) error {
	resp, body, err := PostJSON(ctx, c.ServerURL+"/graphql", gqlRequest{Query: query, Variables: vars, OperationName: op})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode, string(body))
	}
	var gr gqlResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	if len(gr.Errors) > 0 {
		msgs := make([]string, 0, len(gr.Errors))
		for _, e := range gr.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("%s: %w: %s", op, ErrGraphQL, strings.Join(msgs, "; "))
	}
	if err := json.Unmarshal(gr.Data, dst); err != nil {
		return fmt.Errorf("%s: decode data: %w", op, err)
	}
	return nil
}
