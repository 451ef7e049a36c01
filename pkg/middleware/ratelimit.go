package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit caps requests per client IP to requestsPerMinute. Backed by an
// in-memory store; limits are per process.
func RateLimit(requestsPerMinute int) mux.MiddlewareFunc {
	instance := limiter.New(memory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  int64(requestsPerMinute),
	})
	handler := stdlib.NewMiddleware(instance)
	return func(next http.Handler) http.Handler {
		return handler.Handler(next)
	}
}
