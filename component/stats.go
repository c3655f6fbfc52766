package component

// Stat is a bounded value for anything a gauge can display: health, energy,
// heat. Mutations clamp into [0, Max] and fire OnChange so a HUD can ease
// toward the new value.
type Stat struct {
	Max     float64
	Current float64

	OnChange func(s *Stat)
}

// NewStat creates a Stat filled to max.
func NewStat(max float64) *Stat {
	if max <= 0 {
		max = 1
	}
	return &Stat{Max: max, Current: max}
}

// IsEmpty reports whether the stat has drained completely.
func (s *Stat) IsEmpty() bool {
	return s == nil || s.Current <= 0
}

// Fraction returns Current/Max in [0, 1].
func (s *Stat) Fraction() float64 {
	if s == nil || s.Max <= 0 {
		return 0
	}
	f := s.Current / s.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Spend drains the stat. Returns false when there was nothing to drain.
func (s *Stat) Spend(amount float64) bool {
	if s == nil || amount <= 0 || s.Current <= 0 {
		return false
	}
	s.Current -= amount
	if s.Current < 0 {
		s.Current = 0
	}
	s.notify()
	return true
}

// Restore refills the stat up to Max.
func (s *Stat) Restore(amount float64) {
	if s == nil || amount <= 0 {
		return
	}
	s.Current += amount
	if s.Current > s.Max {
		s.Current = s.Max
	}
	s.notify()
}

// SetCurrent sets the current value and clamps to [0, Max].
func (s *Stat) SetCurrent(v float64) {
	if s == nil {
		return
	}
	s.Current = v
	if s.Current < 0 {
		s.Current = 0
	}
	if s.Max > 0 && s.Current > s.Max {
		s.Current = s.Max
	}
	s.notify()
}

// SetMax sets the maximum and clamps Current if needed.
func (s *Stat) SetMax(v float64) {
	if s == nil {
		return
	}
	s.Max = v
	if s.Max <= 0 {
		s.Max = 1
	}
	if s.Current > s.Max {
		s.Current = s.Max
	}
	s.notify()
}

func (s *Stat) notify() {
	if s.OnChange != nil {
		s.OnChange(s)
	}
}
