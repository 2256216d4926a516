package graph

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"go.uber.org/zap"
)

// Request — тело POST /graphql.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

// Handler выполняет GraphQL-запросы над схемой каталога.
type Handler struct {
	Schema graphql.Schema
	Logger *zap.SugaredLogger
}

func NewHandler(schema graphql.Schema, logger *zap.SugaredLogger) *Handler {
	return &Handler{Schema: schema, Logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	switch r.Method {
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.Logger.Warnw("GraphQL: invalid request body", "error", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
	case http.MethodGet:
		req.Query = r.URL.Query().Get("query")
		req.OperationName = r.URL.Query().Get("operationName")
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if req.Query == "" {
		http.Error(w, "missing query", http.StatusBadRequest)
		return
	}
	// GET не меняет данные: мутации только через POST
	if r.Method == http.MethodGet && selectsMutation(req.Query, req.OperationName) {
		h.Logger.Warnw("GraphQL: mutation over GET rejected", "operation", req.OperationName)
		w.Header().Set("Allow", "POST")
		http.Error(w, "mutations require POST", http.StatusMethodNotAllowed)
		return
	}

	res := graphql.Do(graphql.Params{
		Schema:         h.Schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})
	if res.HasErrors() {
		h.Logger.Infow("GraphQL: request finished with errors", "operation", req.OperationName, "errors", res.Errors)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}

// selectsMutation сообщает, что документ выполнит мутацию.
// Без operationName считается мутацией любой документ, где она есть.
// Синтаксические ошибки оставляем graphql.Do.
func selectsMutation(query, operationName string) bool {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return false
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok || op.Operation != ast.OperationTypeMutation {
			continue
		}
		if operationName == "" || (op.Name != nil && op.Name.Value == operationName) {
			return true
		}
	}
	return false
}
