package handlers

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/sol1corejz/go-upi-generator/internal/logger"
	"github.com/sol1corejz/go-upi-generator/internal/models"
	"github.com/sol1corejz/go-upi-generator/internal/phone"
	"go.uber.org/zap"
)

// MissingPhoneMessage возвращается с кодом 400, если параметр phone не передан.
const MissingPhoneMessage = "Phone number parameter is required. Use 'phone' parameter."

// HandleFam генерирует UPI ID по номеру телефона.
//
// Номер берётся из параметра phone: для POST из JSON-тела или формы,
// для GET из строки запроса. Отсутствующий номер даёт 400.
// Ошибка валидации номера возвращается с кодом 200 в поле error.
func (s *UPIServer) HandleFam(w http.ResponseWriter, r *http.Request) {
	raw, err := phoneParam(r)
	if err != nil {
		logger.Log.Debug("cannot read phone parameter", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, models.InternalErrorPrefix+err.Error())
		return
	}

	if raw == "" {
		WriteError(w, http.StatusBadRequest, MissingPhoneMessage)
		return
	}

	res := s.Generator.Generate(raw)
	if res.OK() {
		logger.Log.Debug("UPI ID generated",
			zap.String("phone", phone.Mask(res.Phone)),
			zap.String("upi_id", res.UPIID),
		)
	} else {
		logger.Log.Debug("phone rejected",
			zap.String("phone", phone.Mask(phone.Digits(raw))),
			zap.String("reason", res.Error),
		)
	}

	writeJSON(w, http.StatusOK, res)
}

// phoneParam извлекает значение phone из запроса в зависимости от метода и типа тела.
func phoneParam(r *http.Request) (string, error) {
	if r.Method != http.MethodPost {
		return r.URL.Query().Get("phone"), nil
	}

	if isJSON(r.Header.Get("Content-Type")) {
		var req models.Request
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			return "", fmt.Errorf("invalid JSON body: %w", err)
		}
		return scalarText(req.Phone), nil
	}

	return r.PostFormValue("phone"), nil
}

// isJSON сообщает, описывает ли Content-Type JSON-тело, включая типы вида application/*+json.
func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" ||
		(strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}

// scalarText приводит значение phone из JSON к строке.
// Пустые и нулевые значения считаются отсутствующими.
func scalarText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return ""
		}
		return val.String()
	case bool:
		if !val {
			return ""
		}
		return "True"
	case []any:
		if len(val) == 0 {
			return ""
		}
	case map[string]any:
		if len(val) == 0 {
			return ""
		}
	}
	return fmt.Sprint(v)
}
