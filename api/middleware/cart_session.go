package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
)

// CartSessionCookie names the cookie that ties a shopper to their cart.
const CartSessionCookie = "mango_session"

// CartSession assigns every shopper a session ID via cookie. A request
// without the cookie gets a fresh ID; the cart registry creates the cart
// lazily on first use.
func CartSession(ttl time.Duration, secure bool, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(CartSessionCookie); err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     CartSessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithCartSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
