// Package middlewares содержит промежуточные обработчики (middleware), которые
// выполняются во время обработки HTTP-запросов: сжатие gzip, идентификатор
// запроса, перехват паники и ограничение доступа по подсети.
package middlewares

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sol1corejz/go-upi-generator/cmd/gzip"
	"github.com/sol1corejz/go-upi-generator/internal/logger"
	"github.com/sol1corejz/go-upi-generator/internal/models"
)

// GzipMiddleware сжимает ответ, если клиент поддерживает gzip, и распаковывает
// тело запроса, если оно пришло сжатым.
func GzipMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ow := w

		if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			cw := gzip.NewCompressWriter(w)
			ow = cw
			defer cw.Close()
		}

		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			cr, err := gzip.NewCompressReader(r.Body)
			if err != nil {
				logger.Log.Debug("cannot decompress request body", zap.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = cr
			defer cr.Close()
		}

		h.ServeHTTP(ow, r)
	})
}

// RequestID проставляет заголовок X-Request-ID. Значение клиента сохраняется,
// иначе генерируется новый UUID.
func RequestID(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(logger.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(logger.RequestIDHeader, id)
		}
		w.Header().Set(logger.RequestIDHeader, id)

		h.ServeHTTP(w, r)
	})
}

// Recover перехватывает панику в обработчике и отвечает 500 с текстом ошибки.
func Recover(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Log.Error("panic while handling request",
				zap.String("path", r.URL.Path),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Status:  models.StatusError,
				Message: models.InternalErrorPrefix + fmt.Sprint(rec),
			})
		}()

		h.ServeHTTP(w, r)
	})
}

// TrustedSubnetMiddleware пропускает только запросы, у которых IP из заголовка
// X-Real-IP входит в подсеть subnet. Некорректная подсеть закрывает доступ полностью.
func TrustedSubnetMiddleware(subnet string) func(http.Handler) http.Handler {
	_, trustedNet, err := net.ParseCIDR(subnet)
	if err != nil {
		logger.Log.Warn("invalid trusted subnet, access denied", zap.String("subnet", subnet), zap.Error(err))
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if trustedNet == nil {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			ip := net.ParseIP(r.Header.Get("X-Real-IP"))
			if ip == nil || !trustedNet.Contains(ip) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
