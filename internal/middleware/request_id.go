package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const HeaderRequestID = "X-Request-ID"

type ctxKey string

const requestIDKey ctxKey = "request_id"

// IDs entrantes más largos se descartan y se genera uno nuevo.
const maxRequestIDLen = 128

// RequestID respeta X-Request-ID si viene; si no, genera un UUID.
// Además deja en el contexto un logger hijo con request_id (zerolog.Ctx).
func RequestID(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, id)

			l := base.With().Str("request_id", id).Logger()

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			ctx = l.WithContext(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
