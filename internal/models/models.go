package models

type Request struct {
	Phone any `json:"phone"`
}

// GenerationResult при ошибке валидации содержит только Error.
type GenerationResult struct {
	Error   string `json:"error,omitempty"`
	Status  string `json:"status,omitempty"`
	Phone   string `json:"phone,omitempty"`
	UPIID   string `json:"upi_id,omitempty"`
	QRData  string `json:"qr_data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK сообщает, что генерация прошла успешно.
func (r GenerationResult) OK() bool {
	return r.Status == StatusSuccess
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type Health struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// InternalErrorPrefix предшествует тексту ошибки в ответах с кодом 500.
const InternalErrorPrefix = "Internal server error: "

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusHealthy = "healthy"
)
