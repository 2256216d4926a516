package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPostJSON_SendsPayload_And_TrimsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("Content-Type: %q", ct)
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if m["x"] != float64(1) { // JSON number → float64
			t.Fatalf("unexpected payload: %#v", m)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(" \n{\"ok\":true}\n"))
	}))
	defer ts.Close()

	resp, body, err := PostJSON(context.Background(), ts.URL+"/api", map[string]any{"x": 1})
	if err != nil {
		t.Fatalf("PostJSON err: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if string(body) != `{"ok":true}` {
		t.Fatalf("body: %q", string(body))
	}
}

func TestPostJSON_JSONMarshalError(t *testing.T) {
	// chan в payload вызовет ошибку json.Marshal
	_, _, err := PostJSON(context.Background(), "http://example.invalid", map[string]any{"c": make(chan int)})
	if err == nil {
		t.Fatalf("expected marshal error")
	}
}

func TestPostJSON_NetworkError(t *testing.T) {
	if _, _, err := PostJSON(context.Background(), "http://127.0.0.1:1", map[string]any{}); err == nil {
		t.Fatalf("expected network error")
	}
}

func TestClient_GraphQLErrorsAndStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graphql" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req gqlRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		switch req.OperationName {
		case "Categories":
			_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"internal error"}]}`))
		default:
			http.Error(w, "boom", http.StatusBadGateway)
		}
	}))
	defer ts.Close()

	c := NewClient(ts.URL + "/")
	if _, err := c.Categories(context.Background()); err == nil || !strings.Contains(err.Error(), "internal error") {
		t.Fatalf("expected graphql error, got %v", err)
	}
	if _, err := c.Items(context.Background(), ItemsQuery{}); err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestClient_ItemsSendsOnlyGivenVariables(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		got = req.Variables
		_, _ = w.Write([]byte(`{"data":{"items":[]}}`))
	}))
	defer ts.Close()

	items, err := NewClient(ts.URL).Items(context.Background(), ItemsQuery{Category: "Electronics", Sort: "PRICE_DESC"})
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", items)
	}
	if len(got) != 2 || got["category"] != "Electronics" || got["sort"] != "PRICE_DESC" {
		t.Fatalf("unexpected variables: %#v", got)
	}
}
