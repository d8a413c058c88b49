// Package phone нормализует и проверяет индийские мобильные номера.
package phone

import (
	"errors"
	"strings"
)

// Ошибки валидации. Текст ошибок уходит клиенту без изменений.
var (
	ErrRequired      = errors.New("Phone number is required")
	ErrInvalidFormat = errors.New("Invalid Indian phone number format")
)

// Длины номеров и код страны.
const (
	NationalLength = 10
	countryCode    = "91"
)

// Digits удаляет из строки все символы, кроме ASCII-цифр.
func Digits(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Validate приводит номер к каноническому виду из 10 цифр.
//
// Принимаются два варианта после удаления нецифровых символов:
// 10 цифр, начинающихся с 6, 7, 8 или 9, либо 12 цифр с префиксом "91",
// за которым следует такой же 10-значный номер.
func Validate(raw string) (string, error) {
	if raw == "" {
		return "", ErrRequired
	}

	digits := Digits(raw)

	switch {
	case len(digits) == NationalLength && isMobilePrefix(digits[0]):
		return digits, nil
	case len(digits) == NationalLength+len(countryCode) &&
		strings.HasPrefix(digits, countryCode) &&
		isMobilePrefix(digits[len(countryCode)]):
		return digits[len(countryCode):], nil
	default:
		return "", ErrInvalidFormat
	}
}

func isMobilePrefix(c byte) bool {
	return c >= '6' && c <= '9'
}

// Mask скрывает все цифры номера, кроме последних четырёх. Используется в логах.
func Mask(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("X", len(number)-4) + number[len(number)-4:]
}
