// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService оборачивает генератор с сидом, чтобы всю сессию можно было
// воспроизвести по одному сиду.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает генератор. Нулевой сид берет текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает значение в [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange возвращает значение в [lo, hi].
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 возвращает значение в [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// NormFloat64 возвращает стандартную нормальную величину. Заодно сервис
// годится как источник разброса луча.
func (s *PRNGService) NormFloat64() float64 {
	return s.rng.NormFloat64()
}
