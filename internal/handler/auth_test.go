package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/flight-booking/internal/cache"
	"github.com/iliyamo/flight-booking/internal/config"
	"github.com/iliyamo/flight-booking/internal/handler"
	"github.com/iliyamo/flight-booking/internal/repository"
	"github.com/iliyamo/flight-booking/internal/router"
	"github.com/iliyamo/flight-booking/internal/store"
)

const testSecret = "test-secret"

// newServer wires a full echo instance over a fresh store, mirroring the
// production setup minus redis and the broker.
func newServer(t *testing.T) (*echo.Echo, *store.Store) {
	t.Helper()
	cfg := config.Config{
		Env:          "test",
		Port:         "0",
		JWTSecret:    testSecret,
		AccessTTLMin: 120,
		BcryptCost:   bcrypt.MinCost,
	}
	st := store.New()
	users := repository.NewUserRepo(st)
	flights := repository.NewFlightRepo(st)
	bookings := repository.NewBookingRepo(st)
	flightCache := cache.NewFlightCache(nil, 0)

	a := handler.NewAuthHandler(cfg, users)
	f := handler.NewFlightHandler(flights, flightCache)
	b := handler.NewBookingHandler(bookings, flights, flightCache)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, a)
	router.RegisterAPI(e, a, f, b, cfg.JWTSecret)
	return e, st
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns the issued token.
func register(t *testing.T, e *echo.Echo, name, email, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/register", "",
		`{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return resp.Token
}

func TestRegister(t *testing.T) {
	e, _ := newServer(t)

	token := register(t, e, "Asha", "asha@example.com", "secret")
	assert.NotEmpty(t, token)

	// The token works immediately against a protected endpoint.
	rec := doJSON(e, http.MethodGet, "/me", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "asha@example.com")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	e, _ := newServer(t)

	register(t, e, "Asha", "asha@example.com", "secret")

	rec := doJSON(e, http.MethodPost, "/register", "",
		`{"name":"Other","email":"asha@example.com","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_MissingFields(t *testing.T) {
	e, _ := newServer(t)

	for _, body := range []string{
		`{}`,
		`{"name":"A","email":"a@b.c"}`,
		`{"name":"A","password":"p"}`,
		`{"email":"a@b.c","password":"p"}`,
	} {
		rec := doJSON(e, http.MethodPost, "/register", "", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestLogin(t *testing.T) {
	e, _ := newServer(t)
	register(t, e, "Asha", "asha@example.com", "secret")

	rec := doJSON(e, http.MethodPost, "/login", "",
		`{"email":"asha@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	e, _ := newServer(t)
	register(t, e, "Asha", "asha@example.com", "secret")

	wrongPass := doJSON(e, http.MethodPost, "/login", "",
		`{"email":"asha@example.com","password":"wrong"}`)
	unknownUser := doJSON(e, http.MethodPost, "/login", "",
		`{"email":"nobody@example.com","password":"secret"}`)

	// Unknown account and wrong password are indistinguishable.
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknownUser.Body.String())
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	e, _ := newServer(t)

	// No token at all.
	rec := doJSON(e, http.MethodGet, "/flights", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	rec = doJSON(e, http.MethodGet, "/flights", "garbage", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
