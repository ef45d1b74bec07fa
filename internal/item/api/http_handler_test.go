package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/item-inventory-service/internal/item/domain"
	"github.com/ridloal/item-inventory-service/internal/item/repository"
	"github.com/ridloal/item-inventory-service/internal/item/seed"
	"github.com/ridloal/item-inventory-service/internal/item/service"
)

type testEnv struct {
	router *gin.Engine
	repo   repository.ItemRepository
	seed   *seed.Source
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	src, err := seed.Default()
	require.NoError(t, err)
	repo := repository.NewMemoryItemRepository(src)
	svc := service.NewItemService(repo, "test")
	return testEnv{router: NewRouter(NewItemHandler(svc, 8)), repo: repo, seed: src}
}

func (e testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListPage(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/items"} {
		t.Run(path, func(t *testing.T) {
			w := env.do(t, http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			view := decode[service.ListView](t, w)
			assert.Equal(t, "Item List", view.Title)
			assert.Equal(t, env.repo.Count(), view.Total)
			require.Len(t, view.Items, env.repo.Count())
			first := env.seed.Items()[0]
			assert.Equal(t, first.ID, view.Items[0].ID)
			assert.Equal(t, first.PriceLabel(), view.Items[0].PriceLabel)
			assert.Equal(t, first.Stock < 10, view.Items[0].LowStock)
		})
	}

	t.Run("category filter", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/items?category=Furniture", nil)
		require.Equal(t, http.StatusOK, w.Code)
		view := decode[service.ListView](t, w)
		require.NotEmpty(t, view.Items)
		for _, row := range view.Items {
			assert.Equal(t, "Furniture", row.Category)
		}
	})
}

func TestDetailPage(t *testing.T) {
	env := newTestEnv(t)

	t.Run("existing item", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/item/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		view := decode[service.DetailView](t, w)
		assert.Equal(t, env.seed.Items()[0], view.Item)
		assert.Equal(t, "1299.99", view.PriceLabel)
		assert.True(t, view.LowStock)
		assert.Equal(t, env.seed.Items()[0].Specifications, view.Specifications)
		assert.Contains(t, w.Body.String(), `"specifications":{`)
	})

	t.Run("unknown item", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/item/99999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "item not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/item/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAboutAndHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/about", nil)
	require.Equal(t, http.StatusOK, w.Code)
	about := decode[service.AboutView](t, w)
	assert.Equal(t, "test", about.Version)

	w = env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestItemAPI_CreateItem(t *testing.T) {
	env := newTestEnv(t)
	before := env.repo.Count()

	t.Run("created", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/items", map[string]any{
			"name": "X", "price": 9.99, "category": "Y", "stock": 3,
			"description": "d", "specifications": map[string]string{},
		})
		require.Equal(t, http.StatusCreated, w.Code)
		created := decode[domain.Item](t, w)
		assert.Equal(t, before+1, env.repo.Count())

		stored, ok := env.repo.FindByID(created.ID)
		require.True(t, ok)
		assert.Equal(t, created, stored)
		assert.Equal(t, "X", stored.Name)
	})

	t.Run("zero stock is present, not missing", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/items", map[string]any{
			"name": "Sold out", "price": 1, "category": "Y", "stock": 0,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		count := env.repo.Count()
		w := env.do(t, http.MethodPost, "/api/v1/items", map[string]any{"name": "No price"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, count, env.repo.Count())
	})

	t.Run("blank name", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/items", map[string]any{
			"name": "   ", "price": 1, "category": "Y", "stock": 1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name is required")
	})
}

func TestItemAPI_UpdateItem(t *testing.T) {
	env := newTestEnv(t)

	t.Run("partial merge", func(t *testing.T) {
		original := env.seed.Items()[0]
		w := env.do(t, http.MethodPatch, "/api/v1/items/1", map[string]any{"stock": 3})
		require.Equal(t, http.StatusOK, w.Code)

		updated := decode[domain.Item](t, w)
		assert.Equal(t, 3, updated.Stock)
		updated.Stock = original.Stock
		assert.Equal(t, original, updated)
	})

	t.Run("put behaves the same", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/v1/items/2", map[string]any{"name": "Renamed"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Renamed", decode[domain.Item](t, w).Name)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := env.repo.ListAll()
		w := env.do(t, http.MethodPatch, "/api/v1/items/99999", map[string]any{"name": "Test"})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, before, env.repo.ListAll())
	})

	t.Run("empty patch answers the current item", func(t *testing.T) {
		current, ok := env.repo.FindByID(3)
		require.True(t, ok)
		w := env.do(t, http.MethodPatch, "/api/v1/items/3", map[string]any{})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, current, decode[domain.Item](t, w))
	})

	t.Run("invalid patch", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, "/api/v1/items/1", map[string]any{"price": -1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestItemAPI_RemoveAndReset(t *testing.T) {
	env := newTestEnv(t)
	count := env.repo.Count()

	w := env.do(t, http.MethodDelete, "/api/v1/items/99999", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, count, env.repo.Count())

	w = env.do(t, http.MethodDelete, "/api/v1/items/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, count-1, env.repo.Count())

	w = env.do(t, http.MethodGet, "/api/v1/items/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/items/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":`+itoa(count-1)+`}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/v1/items/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, env.seed.Items(), env.repo.ListAll())

	w = env.do(t, http.MethodGet, "/api/v1/items?category=Accessories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, it := range decode[[]domain.Item](t, w) {
		assert.Equal(t, "Accessories", it.Category)
	}
}

func TestItemAPI_StreamEvents(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/items/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)
	name, data := readSSE(t, reader)
	require.Equal(t, "ready", name)
	assert.JSONEq(t, `{"count":`+itoa(env.repo.Count())+`}`, data)

	env.repo.Remove(1)

	name, data = readSSE(t, reader)
	require.Equal(t, "item.removed", name)
	var ev repository.Event
	require.NoError(t, json.Unmarshal([]byte(data), &ev))
	assert.Equal(t, 1, ev.ItemID)
	assert.Equal(t, env.repo.Count(), ev.Count)
}

func readSSE(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\r\n")
		switch {
		case line == "":
			if name != "" || data != "" {
				return name, data
			}
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
}

func itoa(v int) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}
