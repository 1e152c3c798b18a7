// internal/component/combat.go
package component

// Stats — общая числовая модель бойца и врага.
type Stats struct {
	Edges     int
	Attack    int
	Defense   int
	MaxHealth int
	Health    float64
	// HitReadyAt — момент, когда атакующий снова может нанести удар в ближнем бою.
	HitReadyAt float64
}

// HealthRatio returns health as a fraction of max health.
func (s *Stats) HealthRatio() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return s.Health / float64(s.MaxHealth)
}

// Heal adds amount clamped to max health.
func (s *Stats) Heal(amount float64) {
	s.Health += amount
	s.ClampHealth()
}

// ClampHealth keeps health within [0, MaxHealth].
func (s *Stats) ClampHealth() {
	if s.Health > float64(s.MaxHealth) {
		s.Health = float64(s.MaxHealth)
	}
	if s.Health < 0 {
		s.Health = 0
	}
}
