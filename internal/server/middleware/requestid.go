package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// requestIDHeader заголовок, в котором id отдается клиенту
const requestIDHeader = "X-Request-Id"

// RequestID создает middleware, присваивающий каждому запросу UUID.
// Уже присланный клиентом X-Request-Id сохраняется для сквозной трассировки.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext возвращает id запроса или пустую строку
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
