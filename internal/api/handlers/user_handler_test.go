package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recipebox/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	emails map[string]bool
}

func (f *fakeUserService) Register(_ context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	email := strings.ToLower(req.Email)
	if f.emails[email] {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}
	f.emails[email] = true
	return domain.RegisterResponse{ID: "id-1", Email: email, Name: req.Name}, nil
}

func (f *fakeUserService) Login(_ context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if !f.emails[strings.ToLower(req.Email)] {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}
	return domain.LoginResponse{Token: "token", Role: domain.RoleUser}, nil
}

func (f *fakeUserService) Me(_ context.Context, userID string) (domain.UserResponse, error) {
	return domain.UserResponse{ID: userID}, nil
}

func (f *fakeUserService) UpdateUser(_ context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	return domain.UserResponse{ID: userID, Name: req.Name}, nil
}

func (f *fakeUserService) ForgotPassword(_ context.Context, _ domain.ForgotPasswordRequest) error {
	return nil
}

func (f *fakeUserService) ResetPassword(_ context.Context, _ domain.ResetPasswordRequest) error {
	return nil
}

func newUserTestApp(svc *fakeUserService) *fiber.App {
	app := fiber.New()
	handler := NewUserHandler(svc, validator.New())

	users := app.Group("/api/v1/users")
	users.Post("/register", handler.Register)
	users.Post("/login", handler.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestRegisterHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app := newUserTestApp(&fakeUserService{emails: map[string]bool{}})
		res := postJSON(t, app, "/api/v1/users/register",
			`{"email":"chef@example.com","password":"supersecret","name":"Chef"}`)
		require.Equal(t, fiber.StatusCreated, res.StatusCode)
	})

	t.Run("short password rejected", func(t *testing.T) {
		app := newUserTestApp(&fakeUserService{emails: map[string]bool{}})
		res := postJSON(t, app, "/api/v1/users/register",
			`{"email":"chef@example.com","password":"pw","name":"Chef"}`)
		require.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		app := newUserTestApp(&fakeUserService{emails: map[string]bool{}})
		res := postJSON(t, app, "/api/v1/users/register",
			`{"email":"not-an-email","password":"supersecret","name":"Chef"}`)
		require.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		app := newUserTestApp(&fakeUserService{emails: map[string]bool{"chef@example.com": true}})
		res := postJSON(t, app, "/api/v1/users/register",
			`{"email":"chef@example.com","password":"supersecret","name":"Chef"}`)
		require.Equal(t, fiber.StatusConflict, res.StatusCode)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("unknown user unauthorized", func(t *testing.T) {
		app := newUserTestApp(&fakeUserService{emails: map[string]bool{}})
		res := postJSON(t, app, "/api/v1/users/login",
			`{"email":"nobody@example.com","password":"supersecret"}`)
		require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		app := newUserTestApp(&fakeUserService{emails: map[string]bool{}})
		res := postJSON(t, app, "/api/v1/users/login", `{"email":"chef@example.com"}`)
		require.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	})

	t.Run("success", func(t *testing.T) {
		app := newUserTestApp(&fakeUserService{emails: map[string]bool{"chef@example.com": true}})
		res := postJSON(t, app, "/api/v1/users/login",
			`{"email":"chef@example.com","password":"supersecret"}`)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
	})
}
