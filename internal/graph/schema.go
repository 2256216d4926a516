package graph

import (
	"Catalogue/internal/model"
	"Catalogue/internal/service"
	"errors"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

var errInternal = errors.New("internal error")

// resolver связывает схему GraphQL с сервисом Item.
type resolver struct {
	items  *service.ItemService
	logger *zap.SugaredLogger
}

// NewSchema собирает схему: запросы items/categories/item и мутации createItem/updateItem.
func NewSchema(items *service.ItemService, logger *zap.SugaredLogger) (graphql.Schema, error) {
	r := &resolver{items: items, logger: logger}

	sortValues := graphql.EnumValueConfigMap{}
	for _, k := range model.SortKeys {
		sortValues[string(k)] = &graphql.EnumValueConfig{Value: string(k)}
	}
	itemSort := graphql.NewEnum(graphql.EnumConfig{
		Name:   "ItemSort",
		Values: sortValues,
	})

	itemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Item",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: itemField(func(it *model.Item) any { return it.ID })},
			"name":     &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: itemField(func(it *model.Item) any { return it.Name })},
			"category": &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: itemField(func(it *model.Item) any { return it.Category })},
			"price":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float), Resolve: itemField(func(it *model.Item) any { return it.Price })},
			"favorite": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean), Resolve: itemField(func(it *model.Item) any { return it.Favorite })},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: itemField(func(it *model.Item) any {
				return it.CreatedAt.UTC().Format(time.RFC3339Nano)
			})},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: itemField(func(it *model.Item) any {
				return it.UpdatedAt.UTC().Format(time.RFC3339Nano)
			})},
		},
	})

	payload := func(name string) *graphql.Object {
		return graphql.NewObject(graphql.ObjectConfig{
			Name: name,
			Fields: graphql.Fields{
				"item":   &graphql.Field{Type: itemType},
				"errors": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
			},
		})
	}

	createInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"category": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"price":    &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"favorite": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})
	updateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"name":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"category": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"price":    &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"favorite": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"items": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(itemType))),
				Args: graphql.FieldConfigArgument{
					"search":        &graphql.ArgumentConfig{Type: graphql.String},
					"category":      &graphql.ArgumentConfig{Type: graphql.String},
					"favoritesOnly": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"sort":          &graphql.ArgumentConfig{Type: itemSort},
				},
				Resolve: r.resolveItems,
			},
			"categories": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
				Resolve: r.resolveCategories,
			},
			"item": &graphql.Field{
				Type: itemType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveItem,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createItem": &graphql.Field{
				Type: graphql.NewNonNull(payload("CreateItemPayload")),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createInput)},
				},
				Resolve: r.resolveCreateItem,
			},
			"updateItem": &graphql.Field{
				Type: graphql.NewNonNull(payload("UpdateItemPayload")),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateInput)},
				},
				Resolve: r.resolveUpdateItem,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

func (r *resolver) resolveItems(p graphql.ResolveParams) (any, error) {
	f := model.ItemFilter{
		Search:        stringArg(p.Args, "search"),
		Category:      stringArg(p.Args, "category"),
		FavoritesOnly: boolArg(p.Args, "favoritesOnly"),
		Sort:          model.SortKey(stringArg(p.Args, "sort")),
	}
	items, err := r.items.List(p.Context, f)
	if err != nil {
		r.logger.Errorw("items: service error", "error", err)
		return nil, errInternal
	}
	out := make([]any, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out, nil
}

func (r *resolver) resolveCategories(p graphql.ResolveParams) (any, error) {
	cats, err := r.items.Categories(p.Context)
	if err != nil {
		r.logger.Errorw("categories: service error", "error", err)
		return nil, errInternal
	}
	return cats, nil
}

func (r *resolver) resolveItem(p graphql.ResolveParams) (any, error) {
	it, err := r.items.FindByID(p.Context, stringArg(p.Args, "id"))
	if err != nil {
		r.logger.Errorw("item: service error", "error", err)
		return nil, errInternal
	}
	if it == nil {
		return nil, nil
	}
	return it, nil
}

func (r *resolver) resolveCreateItem(p graphql.ResolveParams) (any, error) {
	in, _ := p.Args["input"].(map[string]any)
	it, err := r.items.Create(p.Context, service.CreateItemInput{
		Name:     stringArg(in, "name"),
		Category: stringArg(in, "category"),
		Price:    floatPtrArg(in, "price"),
		Favorite: boolArg(in, "favorite"),
	})
	return r.mutationResult("createItem", it, err)
}

func (r *resolver) resolveUpdateItem(p graphql.ResolveParams) (any, error) {
	in, _ := p.Args["input"].(map[string]any)
	id := stringArg(in, "id")
	it, err := r.items.Update(p.Context, id, service.UpdateItemInput{
		Name:     stringPtrArg(in, "name"),
		Category: stringPtrArg(in, "category"),
		Price:    floatPtrArg(in, "price"),
		Favorite: boolPtrArg(in, "favorite"),
	})
	return r.mutationResult("updateItem", it, err)
}

// mutationResult формирует {item, errors}: ошибки валидации и not found
// возвращаются списком, остальные — как ошибка GraphQL.
func (r *resolver) mutationResult(op string, it *model.Item, err error) (any, error) {
	msgs, ok := service.ErrorMessages(err)
	if !ok {
		r.logger.Errorw(op+": service error", "error", err)
		return nil, errInternal
	}
	res := map[string]any{"item": nil, "errors": msgs}
	if err == nil && it != nil {
		res["item"] = it
	}
	return res, nil
}

func itemField(get func(it *model.Item) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		switch v := p.Source.(type) {
		case *model.Item:
			return get(v), nil
		case model.Item:
			return get(&v), nil
		default:
			return nil, fmt.Errorf("unexpected item source %T", p.Source)
		}
	}
}
