// Package handlers содержит HTTP-обработчики сервиса генерации UPI ID.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sol1corejz/go-upi-generator/internal/logger"
	"github.com/sol1corejz/go-upi-generator/internal/models"
	"github.com/sol1corejz/go-upi-generator/internal/upi"
	"go.uber.org/zap"
)

// Описание сервиса, которое отдают корневой маршрут и /health.
const (
	ServiceName     = "FamPay UPI API"
	ServiceVersion  = "1.0"
	HealthTimestamp = "2024-01-01T00:00:00Z"
)

// UPIServer объединяет обработчики HTTP-маршрутов сервиса.
type UPIServer struct {
	Generator *upi.Generator
}

// NewUPIServer создаёт сервер с переданным генератором.
// При nil используется генератор со случайным выбором.
func NewUPIServer(g *upi.Generator) *UPIServer {
	if g == nil {
		g = upi.NewGenerator(nil)
	}
	return &UPIServer{Generator: g}
}

// HandleHome возвращает название сервиса, версию и список маршрутов.
func (s *UPIServer) HandleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ServiceInfo{
		Message: ServiceName + " is running",
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"/fam":    "POST - Generate UPI ID from phone number",
			"/health": "GET - API health check",
		},
	})
}

// HandleHealth всегда отвечает 200 с фиксированным телом.
func (s *UPIServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Health{
		Status:    models.StatusHealthy,
		Service:   ServiceName,
		Timestamp: HealthTimestamp,
	})
}

// writeJSON кодирует v в тело ответа. HTML-экранирование отключено,
// чтобы амперсанды в qr_data не превращались в &.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Log.Error("Failed to encode response", zap.Error(err))
	}
}

// WriteError отправляет ответ об ошибке в формате {"status":"error","message":...}.
func WriteError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, models.ErrorResponse{
		Status:  models.StatusError,
		Message: message,
	})
}
