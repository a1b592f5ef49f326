package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"cadastroprojetos/internal/pkg/logger"
)

// statusRecorder captura o status code escrito pelo handler final.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger atribui um request id a cada requisição e registra método,
// caminho, status e duração ao final do atendimento.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.New().String()
			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			inicio := time.Now()

			next.ServeHTTP(rec, r.WithContext(ctx))

			log.Info("Requisição atendida", map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"duration":   time.Since(inicio).String(),
			})
		})
	}
}

// GetRequestIDFromContext extrai o request id atribuído pelo RequestLogger.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
