package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techstore/inventory-api/internal/api"
	"github.com/techstore/inventory-api/internal/api/handler"
	"github.com/techstore/inventory-api/internal/api/middleware"
	"github.com/techstore/inventory-api/internal/core/domain"
	"github.com/techstore/inventory-api/internal/core/ports"
)

type stubLaptopService struct {
	listFn   func(ctx context.Context) ([]domain.Laptop, error)
	getFn    func(ctx context.Context, id string) (*domain.Laptop, error)
	createFn func(ctx context.Context, input ports.CreateLaptopInput, actor ports.Actor) (*domain.Laptop, error)
	updateFn func(ctx context.Context, id string, update ports.LaptopUpdate, actor ports.Actor) (*domain.Laptop, error)
	deleteFn func(ctx context.Context, id string, actor ports.Actor) error
}

func (s *stubLaptopService) List(ctx context.Context) ([]domain.Laptop, error) {
	return s.listFn(ctx)
}

func (s *stubLaptopService) Get(ctx context.Context, id string) (*domain.Laptop, error) {
	return s.getFn(ctx, id)
}

func (s *stubLaptopService) Create(ctx context.Context, input ports.CreateLaptopInput, actor ports.Actor) (*domain.Laptop, error) {
	return s.createFn(ctx, input, actor)
}

func (s *stubLaptopService) Update(ctx context.Context, id string, update ports.LaptopUpdate, actor ports.Actor) (*domain.Laptop, error) {
	return s.updateFn(ctx, id, update, actor)
}

func (s *stubLaptopService) Delete(ctx context.Context, id string, actor ports.Actor) error {
	return s.deleteFn(ctx, id, actor)
}

// asAdmin injects the claim the Auth middleware would have set.
func asAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(middleware.CtxUserID, "admin-1")
		c.Set(middleware.CtxRole, domain.RoleAdmin)
		return next(c)
	}
}

func newLaptopTestApp(stub *stubLaptopService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop(), false)
	h := handler.NewLaptopHandler(stub)
	e.GET("/api/laptops", h.List)
	e.GET("/api/laptops/:id", h.Get)
	e.POST("/api/laptops", h.Create, asAdmin)
	e.PUT("/api/laptops/:id", h.Update, asAdmin)
	e.DELETE("/api/laptops/:id", h.Delete, asAdmin)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLaptopHandler_List(t *testing.T) {
	stub := &stubLaptopService{
		listFn: func(ctx context.Context) ([]domain.Laptop, error) {
			return []domain.Laptop{
				{ID: "1", Brand: "Dell", Model: "XPS", Price: 1500},
				{ID: "2", Brand: "HP", Model: "Pavilion", Price: 800},
			}, nil
		},
	}
	e := newLaptopTestApp(stub)

	rec := doJSON(e, http.MethodGet, "/api/laptops", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 laptops, got %d", len(resp))
	}
	if resp[0]["brand"] != "Dell" {
		t.Fatalf("unexpected first laptop: %+v", resp[0])
	}
}

func TestLaptopHandler_List_Empty(t *testing.T) {
	stub := &stubLaptopService{
		listFn: func(ctx context.Context) ([]domain.Laptop, error) {
			return []domain.Laptop{}, nil
		},
	}
	e := newLaptopTestApp(stub)

	rec := doJSON(e, http.MethodGet, "/api/laptops", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestLaptopHandler_Get_NotFound(t *testing.T) {
	stub := &stubLaptopService{
		getFn: func(ctx context.Context, id string) (*domain.Laptop, error) {
			return nil, domain.ErrLaptopNotFound
		},
	}
	e := newLaptopTestApp(stub)

	rec := doJSON(e, http.MethodGet, "/api/laptops/507f1f77bcf86cd799439011", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "laptop not found" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestLaptopHandler_Create(t *testing.T) {
	stub := &stubLaptopService{
		createFn: func(ctx context.Context, input ports.CreateLaptopInput, actor ports.Actor) (*domain.Laptop, error) {
			if actor.ID != "admin-1" || actor.Role != domain.RoleAdmin {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			if input.Brand != "MacBook" || !input.Available {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Laptop{ID: "1", Brand: input.Brand, Model: input.Model, Price: input.Price, Available: input.Available}, nil
		},
	}
	e := newLaptopTestApp(stub)

	body := `{"brand":"MacBook","model":"Pro","price":2500,"ram_gb":16,"storage_gb":512,"processor":"Apple M1"}`
	rec := doJSON(e, http.MethodPost, "/api/laptops", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "laptop created" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	laptop, ok := resp["laptop"].(map[string]any)
	if !ok || laptop["brand"] != "MacBook" {
		t.Fatalf("unexpected laptop payload: %+v", resp["laptop"])
	}
}

func TestLaptopHandler_Create_ValidationFailure(t *testing.T) {
	stub := &stubLaptopService{
		createFn: func(ctx context.Context, input ports.CreateLaptopInput, actor ports.Actor) (*domain.Laptop, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	e := newLaptopTestApp(stub)

	rec := doJSON(e, http.MethodPost, "/api/laptops", `{"brand":"MacBook","price":-1}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestLaptopHandler_Update(t *testing.T) {
	stub := &stubLaptopService{
		updateFn: func(ctx context.Context, id string, update ports.LaptopUpdate, actor ports.Actor) (*domain.Laptop, error) {
			if id != "abc123" {
				t.Fatalf("unexpected id: %s", id)
			}
			if update.Price == nil || *update.Price != 1400 {
				t.Fatalf("expected price update, got %+v", update)
			}
			if update.Brand != nil {
				t.Fatalf("brand should be untouched")
			}
			return &domain.Laptop{ID: id, Brand: "Dell", Model: "XPS", Price: *update.Price}, nil
		},
	}
	e := newLaptopTestApp(stub)

	rec := doJSON(e, http.MethodPut, "/api/laptops/abc123", `{"price":1400}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	laptop, ok := resp["laptop"].(map[string]any)
	if !ok || laptop["price"] != float64(1400) {
		t.Fatalf("unexpected laptop payload: %+v", resp["laptop"])
	}
}

func TestLaptopHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubLaptopService{
		deleteFn: func(ctx context.Context, id string, actor ports.Actor) error {
			deleted = id
			return nil
		},
	}
	e := newLaptopTestApp(stub)

	rec := doJSON(e, http.MethodDelete, "/api/laptops/abc123", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "abc123" {
		t.Fatalf("expected delete of abc123, got %q", deleted)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "laptop deleted" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestLaptopHandler_Delete_NotFound(t *testing.T) {
	stub := &stubLaptopService{
		deleteFn: func(ctx context.Context, id string, actor ports.Actor) error {
			return domain.ErrLaptopNotFound
		},
	}
	e := newLaptopTestApp(stub)

	rec := doJSON(e, http.MethodDelete, "/api/laptops/507f1f77bcf86cd799439011", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLaptopHandler_Mutation_WithoutClaim(t *testing.T) {
	stub := &stubLaptopService{
		deleteFn: func(ctx context.Context, id string, actor ports.Actor) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop(), false)
	h := handler.NewLaptopHandler(stub)
	// Route registered without the guard: the handler's own claim check
	// must still refuse to run unauthenticated.
	e.DELETE("/api/laptops/:id", h.Delete)

	rec := doJSON(e, http.MethodDelete, "/api/laptops/abc123", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
