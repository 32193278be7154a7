package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/labellecuisine/ordering-backend/pkg/logger"
)

const cartSessionHeader = "X-Cart-Session"

// CartSession resolves the durable cart slot for the request. A client
// without a session header gets a fresh identifier minted and echoed back;
// it must replay the header on subsequent requests to keep its cart.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(cartSessionHeader))
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(cartSessionHeader, sessionID)

			ctx := WithCartSession(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
