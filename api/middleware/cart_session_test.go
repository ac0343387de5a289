package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCartSessionIssuesCookie(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartSessionIDFromContext(r.Context())
	})

	handler := CartSession(time.Hour, false, nil)(next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CartSessionCookie, cookies[0].Name)
	require.Equal(t, seen, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
}

func TestCartSessionReusesExistingCookie(t *testing.T) {
	existing := uuid.NewString()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartSessionIDFromContext(r.Context())
	})

	handler := CartSession(time.Hour, false, nil)(next)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: existing})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, existing, seen)
	require.Empty(t, rec.Result().Cookies(), "no new cookie when one is presented")
}

func TestCartSessionRejectsForgedCookieValue(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartSessionIDFromContext(r.Context())
	})

	handler := CartSession(time.Hour, false, nil)(next)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: "../../etc/passwd"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotEqual(t, "../../etc/passwd", seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err, "forged cookie must be replaced with a fresh uuid")
}
