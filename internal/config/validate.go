package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable arena and
// that every factor points the right way. All problems are reported at once.
func (c BounceConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	a := c.Arena
	check(a.Width > 0 && a.Height > 0, "arena must have a positive size, got %vx%v", a.Width, a.Height)
	check(a.ExitLeft < a.ExitRight, "arena.exit_left (%v) must be below arena.exit_right (%v)", a.ExitLeft, a.ExitRight)
	check(a.Top < a.Bottom, "arena.top (%v) must be below arena.bottom (%v)", a.Top, a.Bottom)
	check(a.TopSnap > a.Top && a.TopSnap <= a.Bottom, "arena.top_snap (%v) must lie inside (top, bottom]", a.TopSnap)
	check(a.BottomSnap >= a.Top && a.BottomSnap <= a.Bottom, "arena.bottom_snap (%v) must lie inside [top, bottom]", a.BottomSnap)
	check(a.PaddleTop < a.PaddleBottom, "arena.paddle_top (%v) must be below arena.paddle_bottom (%v)", a.PaddleTop, a.PaddleBottom)

	check(c.Loop.TickRate > 0, "loop.tick_rate must be positive, got %d", c.Loop.TickRate)
	check(c.Loop.MaxFrame >= 0, "loop.max_frame must not be negative, got %v", c.Loop.MaxFrame)

	check(c.Player.Radius > 0, "player.radius must be positive, got %v", c.Player.Radius)
	check(c.Player.SpawnX > a.ExitLeft && c.Player.SpawnX <= a.ExitRight,
		"player.spawn_x (%v) must be inside the exits, or every round ends at once", c.Player.SpawnX)

	check(c.Paddles.Left.Width > 0 && c.Paddles.Left.Height > 0, "paddles.left must have a positive size")
	check(c.Paddles.Right.Width > 0 && c.Paddles.Right.Height > 0, "paddles.right must have a positive size")

	p := c.Physics
	check(p.RampFactor > 1, "physics.ramp_factor must be > 1, got %v", p.RampFactor)
	check(p.DecayDivisor > 1, "physics.decay_divisor must be > 1, got %v", p.DecayDivisor)
	check(p.Restitution > 0 && p.Restitution <= 1, "physics.restitution must be in (0, 1], got %v", p.Restitution)
	check(p.BounceFactor >= 1, "physics.bounce_factor must be >= 1, got %v", p.BounceFactor)
	check(p.ReversalDamping >= 0 && p.ReversalDamping <= 1, "physics.reversal_damping must be in [0, 1], got %v", p.ReversalDamping)
	check(p.DeadZone >= 0, "physics.dead_zone must not be negative, got %v", p.DeadZone)
	check(p.NearReversal >= 0, "physics.near_reversal must not be negative, got %v", p.NearReversal)

	s := c.SpeedLimit
	check(s.Base > 0, "speed_limit.base must be positive, got %v", s.Base)
	check(s.Increment >= 0, "speed_limit.increment must not be negative, got %v", s.Increment)
	check(s.Increment == 0 || s.Interval > 0, "speed_limit.interval must be positive when increment is set")
	check(s.Max == 0 || s.Max >= s.Base, "speed_limit.max (%v) must be 0 or at least base (%v)", s.Max, s.Base)

	b := c.StartButton
	check(b.Width > 0 && b.Height > 0, "start_button must have a positive size")

	return errors.Join(errs...)
}
