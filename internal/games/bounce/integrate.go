package bounce

import "math"

// Integrate advances every body by one tick of dt seconds.
//
// Only the player's vertical axis reacts to input. The rules run in a fixed
// order and each one sees the vy left by the previous one:
//
//  1. The displacement starts as the pre-tick vy.
//  2. Up held: when vy > NearReversal the ball is still falling, so a
//     fraction of vy is taken off the displacement and vy is kept.
//     Otherwise vy ramps upward by RampFactor, capped at -SpeedLimit,
//     and is added to the displacement.
//  3. Down held: the mirror image, evaluated against vy after step 2.
//  4. Decay: when |vy| > DeadZone, vy is divided by DecayDivisor but never
//     brought below DeadZone. At or under DeadZone vy drifts unchanged.
//  5. Positions move by velocity * dt; paddles move linearly.
//
// vx is never changed here.
func Integrate(w *World, dt float64) {
	p := w.Config.Physics
	limit := w.Session.SpeedLimit
	vy := w.Player.VY
	dy := vy

	if w.Input.MovingUp {
		if vy > p.NearReversal {
			dy -= vy * p.ReversalDamping
		} else {
			vy = max(-math.Abs(vy)*p.RampFactor, -limit)
			dy += vy
		}
	}

	if w.Input.MovingDown {
		if vy < -p.NearReversal {
			dy -= vy * p.ReversalDamping
		} else {
			vy = min(math.Abs(vy)*p.RampFactor, limit)
			dy += vy
		}
	}

	w.Player.VY = decay(vy, p.DeadZone, p.DecayDivisor)

	w.Player.X += w.Player.VX * dt
	w.Player.Y += dy * dt

	w.Left.Y += w.Left.VY * dt
	w.Right.Y += w.Right.VY * dt
}

// decay shrinks |v| toward deadZone without crossing it or flipping sign.
func decay(v, deadZone, divisor float64) float64 {
	mag := math.Abs(v)
	if mag <= deadZone {
		return v
	}
	return math.Copysign(max(mag/divisor, deadZone), v)
}
