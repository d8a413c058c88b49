// Package logger предоставляет функции для инициализации и использования логирования
// в приложении, включая логирование HTTP-запросов с помощью библиотеки zap.
package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Log является глобальной переменной для использования логгера. Изначально настроен на no-op логгер.
var Log = zap.NewNop()

const RequestIDHeader = "X-Request-ID"

// Initialize настраивает глобальный логгер с указанным уровнем логирования,
// например "info" или "debug". Возвращает ошибку, если уровень некорректен.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl
	return nil
}

// responseData хранит сведения об ответе, которые попадают в лог.
type responseData struct {
	status int
	size   int
}

// loggingResponseWriter запоминает код ответа и размер тела.
type loggingResponseWriter struct {
	http.ResponseWriter
	data *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.data.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.data.status = statusCode
}

// Flush нужен потоковым обработчикам (SSE).
func (w *loggingResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RequestLogger оборачивает HTTP-обработчик и пишет в лог путь, метод,
// код ответа, размер тела, длительность и идентификатор запроса.
func RequestLogger(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		data := &responseData{status: http.StatusOK}
		lw := &loggingResponseWriter{ResponseWriter: w, data: data}

		h.ServeHTTP(lw, r)

		Log.Info("got incoming HTTP request",
			zap.String("path", r.RequestURI),
			zap.String("method", r.Method),
			zap.Int("status", data.status),
			zap.Int("size", data.size),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", w.Header().Get(RequestIDHeader)),
		)
	})
}
