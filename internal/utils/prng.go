// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-space-shooter/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Pick выбирает элемент таблицы по заранее вытянутому числу r из [0, 1).
// Веса нормируются на их сумму, поэтому таблица не обязана суммироваться в 1.
// Пустая таблица или нулевая сумма весов дают нулевое значение T и первый
// элемент соответственно.
func Pick[T any](entries []defs.Weighted[T], r float64) T {
	var zero T
	if len(entries) == 0 {
		return zero
	}

	total := defs.TotalWeight(entries)
	if total <= 0 {
		return entries[0].Value
	}

	target := r * total
	upto := 0.0
	for _, entry := range entries {
		upto += entry.Weight
		if target < upto {
			return entry.Value
		}
	}

	// Сюда попадаем только из-за округления при r близком к 1.
	return entries[len(entries)-1].Value
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы.
func ChooseWeighted[T any](s *PRNGService, entries []defs.Weighted[T]) T {
	return Pick(entries, s.Float64())
}
