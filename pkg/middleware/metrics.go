package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/metrics"
)

// Metrics registra contagem e duração da rota. path é o padrão registrado no router,
// não a URL recebida, para manter a cardinalidade dos labels fixa.
func Metrics(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			metrics.ObserveHTTPRequest(r.Method, path, lrw.statusCode, time.Since(startTime))
		})
	}
}
