package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/labellecuisine/ordering-backend/api/middleware"
	cartsvc "github.com/labellecuisine/ordering-backend/internal/cart"
	"github.com/labellecuisine/ordering-backend/internal/catalog"
	"github.com/labellecuisine/ordering-backend/pkg/db/models"
	"github.com/labellecuisine/ordering-backend/pkg/enums"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

// stubCartService tracks the cart in memory keyed by session.
type stubCartService struct {
	carts map[string]*cartsvc.Cart
}

func newStubCartService() *stubCartService {
	return &stubCartService{carts: map[string]*cartsvc.Cart{}}
}

func (s *stubCartService) cart(sessionID string) *cartsvc.Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c := &cartsvc.Cart{}
	s.carts[sessionID] = c
	return c
}

func (s *stubCartService) Get(_ context.Context, sessionID string) (cartsvc.Cart, error) {
	return *s.cart(sessionID), nil
}

func (s *stubCartService) AddItem(_ context.Context, sessionID string, item cartsvc.ItemInput) (cartsvc.Cart, error) {
	c := s.cart(sessionID)
	c.AddItem(item)
	return *c, nil
}

func (s *stubCartService) RemoveItem(_ context.Context, sessionID string, id int) (cartsvc.Cart, error) {
	c := s.cart(sessionID)
	c.RemoveItem(id)
	return *c, nil
}

func (s *stubCartService) UpdateQuantity(_ context.Context, sessionID string, id, quantity int) (cartsvc.Cart, error) {
	c := s.cart(sessionID)
	c.UpdateQuantity(id, quantity)
	return *c, nil
}

func (s *stubCartService) Clear(_ context.Context, sessionID string) (cartsvc.Cart, error) {
	c := s.cart(sessionID)
	c.Clear()
	return *c, nil
}

type stubCatalogService struct {
	items map[int]models.MenuItem
}

func (s stubCatalogService) Menu(context.Context) ([]catalog.Section, error) {
	return nil, nil
}

func (s stubCatalogService) Category(context.Context, string) (*catalog.Section, error) {
	return nil, nil
}

func (s stubCatalogService) Item(_ context.Context, id int) (*models.MenuItem, error) {
	if item, ok := s.items[id]; ok {
		return &item, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
}

func testCatalog() stubCatalogService {
	return stubCatalogService{items: map[int]models.MenuItem{
		7: {ID: 7, Name: "Coq au Vin", Price: types.MustMoney("32"), Category: enums.MenuCategoryMains},
	}}
}

func cartRouter(svc cartsvc.Service, menu catalog.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/cart", CartGet(svc, nil))
	r.Post("/api/cart/items", CartAddItem(svc, menu, nil))
	r.Delete("/api/cart/items/{id}", CartRemoveItem(svc, nil))
	r.Patch("/api/cart/items/{id}", CartUpdateQuantity(svc, nil))
	r.Delete("/api/cart", CartClear(svc, nil))
	return r
}

func doCartRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req = req.WithContext(middleware.WithCartSession(req.Context(), "sess-1"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeCartView(t *testing.T, resp *httptest.ResponseRecorder) cartView {
	t.Helper()
	var envelope struct {
		Data cartView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestCartAddItemResolvesFromCatalog(t *testing.T) {
	router := cartRouter(newStubCartService(), testCatalog())

	resp := doCartRequest(t, router, http.MethodPost, "/api/cart/items", `{"id":7}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	view := decodeCartView(t, resp)
	if len(view.Items) != 1 || view.Items[0].Name != "Coq au Vin" {
		t.Fatalf("expected catalog snapshot on the line, got %+v", view.Items)
	}
	if view.TotalItems != 1 || !view.TotalPrice.Equal(types.MustMoney("32")) {
		t.Fatalf("unexpected totals %+v", view)
	}
}

func TestCartAddUnknownItemRejected(t *testing.T) {
	router := cartRouter(newStubCartService(), testCatalog())

	resp := doCartRequest(t, router, http.MethodPost, "/api/cart/items", `{"id":99}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartQuantityAndRemoveFlow(t *testing.T) {
	svc := newStubCartService()
	router := cartRouter(svc, testCatalog())

	doCartRequest(t, router, http.MethodPost, "/api/cart/items", `{"id":7}`)
	doCartRequest(t, router, http.MethodPost, "/api/cart/items", `{"id":7}`)

	resp := doCartRequest(t, router, http.MethodPatch, "/api/cart/items/7", `{"quantity":5}`)
	if view := decodeCartView(t, resp); view.TotalItems != 5 {
		t.Fatalf("expected quantity 5, got %+v", view)
	}

	resp = doCartRequest(t, router, http.MethodDelete, "/api/cart/items/7", "")
	if view := decodeCartView(t, resp); len(view.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", view)
	}
}

func TestCartClearEndpoint(t *testing.T) {
	svc := newStubCartService()
	router := cartRouter(svc, testCatalog())

	doCartRequest(t, router, http.MethodPost, "/api/cart/items", `{"id":7}`)
	resp := doCartRequest(t, router, http.MethodDelete, "/api/cart", "")

	if view := decodeCartView(t, resp); view.TotalItems != 0 {
		t.Fatalf("expected cleared cart, got %+v", view)
	}
}

func TestCartGetEmpty(t *testing.T) {
	router := cartRouter(newStubCartService(), testCatalog())

	resp := doCartRequest(t, router, http.MethodGet, "/api/cart", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	view := decodeCartView(t, resp)
	if view.Items == nil {
		t.Fatal("items must be an empty array, not null")
	}
	if view.TotalItems != 0 {
		t.Fatalf("unexpected totals %+v", view)
	}
}
