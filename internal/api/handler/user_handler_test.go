package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bookhive/bookstore-api/internal/core/domain"
	"github.com/bookhive/bookstore-api/internal/core/ports"
)

type stubUserService struct {
	getAllFn  func(ctx context.Context) ([]*domain.User, error)
	getByIDFn func(ctx context.Context, id string) (*domain.User, error)
	updateFn  func(ctx context.Context, actor *domain.User, id string, update ports.UserUpdate) (*domain.User, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubUserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.getAllFn(ctx)
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserService) Update(ctx context.Context, actor *domain.User, id string, update ports.UserUpdate) (*domain.User, error) {
	return s.updateFn(ctx, actor, id, update)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestUserHandler_Me(t *testing.T) {
	e := newTestEcho()
	actor := &domain.User{ID: "user_1", Name: "John", Email: "john@example.com"}
	handler := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, actor)

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["email"] != "john@example.com" {
		t.Fatalf("unexpected profile payload: %+v", resp)
	}
}

func TestUserHandler_Me_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getAllFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "user_1", Name: "John"},
				{ID: "user_2", Name: "Jane"},
				{ID: "user_3", Name: "Admin"},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(3) {
		t.Fatalf("expected count 3, got %v", resp["count"])
	}
}

func TestUserHandler_Get_NotFoundPassesThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/user_999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user_999")

	if err := handler.Get(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound to pass through, got %v", err)
	}
}

func TestUserHandler_Update_PartialFields(t *testing.T) {
	e := newTestEcho()
	actor := &domain.User{ID: "user_1"}
	stub := &stubUserService{
		updateFn: func(ctx context.Context, got *domain.User, id string, update ports.UserUpdate) (*domain.User, error) {
			if got.ID != actor.ID || id != "user_1" {
				t.Fatalf("unexpected args: %s %s", got.ID, id)
			}
			if update.Age == nil || *update.Age != 31 {
				t.Fatalf("age pointer not bound: %+v", update)
			}
			if update.Name != nil || update.Email != nil {
				t.Fatalf("absent fields must stay nil: %+v", update)
			}
			return &domain.User{ID: id, Age: *update.Age}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users/user_1", strings.NewReader(`{"age":31}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, actor)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_ForbiddenPassesThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, _ *domain.User, _ string, _ ports.UserUpdate) (*domain.User, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users/user_2", strings.NewReader(`{"name":"X"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.User{ID: "user_1"})
	c.SetParamNames("id")
	c.SetParamValues("user_2")

	if err := handler.Update(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden to pass through, got %v", err)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "user_2" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/users/user_2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user_2")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "User deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
