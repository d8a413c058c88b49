package upi

import "math/rand/v2"

// Chooser выбирает случайный индекс в диапазоне [0, n).
type Chooser interface {
	Intn(n int) int
}

type randomChooser struct{}

// NewRandomChooser возвращает Chooser на глобальном генераторе math/rand/v2,
// безопасный для конкурентного использования.
func NewRandomChooser() Chooser {
	return randomChooser{}
}

func (randomChooser) Intn(n int) int {
	return rand.IntN(n)
}
