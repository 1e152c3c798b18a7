// internal/utils/prng.go
package utils

import (
	"edge-arena/internal/defs"
	"math"
	"math/rand"
	"time"
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

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Reseed restarts the sequence from seed.
func (s *PRNGService) Reseed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// IntRange returns a uniform integer in [lo, hi].
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform float in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Jitter returns a uniform offset in [-amount, +amount].
func (s *PRNGService) Jitter(amount float64) float64 {
	return (s.rng.Float64()*2 - 1) * amount
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Angle returns a uniform angle in [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// Direction returns a uniformly random unit vector.
func (s *PRNGService) Direction() Vec2 {
	return FromAngle(s.Angle())
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы выпадения.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) defs.PartKind {
	weights := make([]int, len(entries))
	for i, entry := range entries {
		weights[i] = entry.Weight
	}
	idx := s.pickIndex(weights)
	if idx < 0 {
		return defs.PartEdge
	}
	return entries[idx].Kind
}

// ChooseVariant draws an enemy variant using the definitions' spawn weights.
func (s *PRNGService) ChooseVariant(lib *defs.Library) defs.EnemyVariant {
	weights := make([]int, len(defs.EnemyVariants))
	for i, variant := range defs.EnemyVariants {
		weights[i] = lib.Enemy(variant).Weight
	}
	idx := s.pickIndex(weights)
	if idx < 0 {
		return defs.VariantChaser
	}
	return defs.EnemyVariants[idx]
}

// pickIndex returns the index selected by weight, or -1 for an empty table.
func (s *PRNGService) pickIndex(weights []int) int {
	if len(weights) == 0 {
		return -1
	}

	totalWeight := 0
	for _, w := range weights {
		if w > 0 {
			totalWeight += w
		}
	}
	if totalWeight <= 0 {
		// Если сумма весов некорректна, возвращаем первый элемент по умолчанию
		return 0
	}

	r := s.rng.Intn(totalWeight)
	upto := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
	}
	return len(weights) - 1
}
