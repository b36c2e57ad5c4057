package config

import "time"

// SpeedSchedule computes the player's vertical speed cap from the time a
// round has been active. The cap grows in steps: Base, then Base+Increment
// after one Interval, and so on, never above Max when Max is set.
type SpeedSchedule struct {
	cfg SpeedLimitConfig
}

// NewSpeedSchedule creates a schedule for the given speed-limit settings.
func NewSpeedSchedule(cfg SpeedLimitConfig) *SpeedSchedule {
	return &SpeedSchedule{cfg: cfg}
}

// Base returns the limit at the start of a round.
func (s *SpeedSchedule) Base() float64 {
	return s.cfg.Base
}

// Growing reports whether the limit changes over time at all.
func (s *SpeedSchedule) Growing() bool {
	return s.cfg.Increment > 0 && s.cfg.Interval > 0
}

// Limit returns the cap after the round has been active for elapsed.
// The result is non-decreasing in elapsed.
func (s *SpeedSchedule) Limit(elapsed time.Duration) float64 {
	if !s.Growing() || elapsed < s.cfg.Interval {
		return s.cfg.Base
	}

	steps := float64(elapsed / s.cfg.Interval)
	limit := s.cfg.Base + steps*s.cfg.Increment
	if s.cfg.Max > 0 && limit > s.cfg.Max {
		limit = max(s.cfg.Max, s.cfg.Base)
	}
	return limit
}
