// Package upi генерирует синтетические UPI ID и строки платёжных ссылок по номеру телефона.
//
// Сгенерированный идентификатор нигде не регистрируется и не проверяется на уникальность.
package upi

import (
	"github.com/sol1corejz/go-upi-generator/internal/models"
	"github.com/sol1corejz/go-upi-generator/internal/phone"
)

// Handles содержит суффиксы VPA, из которых выбирается один для каждого идентификатора.
var Handles = []string{"@fam", "@okfam", "@axl", "@ybl"}

// SuccessMessage возвращается в поле message при успешной генерации.
const SuccessMessage = "UPI ID generated successfully"

// PayeeName подставляется в параметр pn платёжной ссылки.
const PayeeName = "FamPay%20User"

// template строит идентификатор из канонического номера и суффикса.
type template func(number, handle string) string

var templates = []template{
	func(n, h string) string { return "fampay.user" + n[len(n)-4:] + h },
	func(n, h string) string { return "fam" + n + h },
	func(n, h string) string { return "fampay" + n[len(n)-6:] + h },
	func(n, h string) string { return "user.phone" + n[len(n)-4:] + h },
}

// Generator строит результат генерации. Состояния между вызовами не хранит.
type Generator struct {
	chooser Chooser
}

// NewGenerator создаёт генератор. При nil используется NewRandomChooser.
func NewGenerator(chooser Chooser) *Generator {
	if chooser == nil {
		chooser = NewRandomChooser()
	}
	return &Generator{chooser: chooser}
}

// Generate проверяет номер и возвращает случайно выбранный UPI ID с платёжной ссылкой.
// Сначала выбирается суффикс, затем шаблон; повторные вызовы с тем же номером
// могут вернуть разные идентификаторы.
func (g *Generator) Generate(raw string) models.GenerationResult {
	number, err := phone.Validate(raw)
	if err != nil {
		return models.GenerationResult{Error: err.Error()}
	}

	handle := Handles[g.chooser.Intn(len(Handles))]
	candidates := Candidates(number, handle)
	id := candidates[g.chooser.Intn(len(candidates))]

	return models.GenerationResult{
		Status:  models.StatusSuccess,
		Phone:   number,
		UPIID:   id,
		QRData:  PaymentLink(id),
		Message: SuccessMessage,
	}
}

// Candidates возвращает все варианты идентификатора для канонического номера и суффикса.
func Candidates(number, handle string) []string {
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		out = append(out, t(number, handle))
	}
	return out
}

// PaymentLink строит строку upi://pay с идентификатором в параметре pa.
// Сумма пустая, валюта INR.
func PaymentLink(id string) string {
	return "upi://pay?pa=" + id + "&pn=" + PayeeName + "&am=&cu=INR"
}
