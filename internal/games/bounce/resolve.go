package bounce

import "time"

// RoundResult describes a finished round.
type RoundResult struct {
	Round      int           `yaml:"round"`
	Score      int           `yaml:"score"`
	Elapsed    time.Duration `yaml:"elapsed"`
	SpeedLimit float64       `yaml:"speed_limit"`
}

// Outcome reports what the resolver did during one tick.
type Outcome struct {
	RoundEnded *RoundResult // Set when the ball left the arena
	WallBounce bool
	PaddleHit  bool
}

// Resolve checks the bodies against the arena and each other and applies
// the resulting velocity and score changes. It runs before Integrate, so it
// acts on the positions produced by the previous tick. Rules run in order:
//
//  1. Side exit (active rounds only): the round ends, the world resets to
//     spawn and nothing else is checked.
//  2. Top/bottom wall: vy reverses scaled by Restitution and the ball is
//     snapped back inside.
//  3. Paddle contact: the paddle the ball is heading for reverses, vx
//     reverses scaled by BounceFactor and the score goes up by one. A
//     sustained overlap repeats this every tick unless
//     SingleHitPerOverlap is set.
//  4. Paddle margins: each paddle outside its margin reverses.
func Resolve(w *World) Outcome {
	var out Outcome
	a := w.Config.Arena

	// Player - side wall: game over
	if w.Session.Mode == ModeActive && (w.Player.X > a.ExitRight || w.Player.X <= a.ExitLeft) {
		res := w.endRound()
		out.RoundEnded = &res
		return out
	}

	// Player - top/bottom wall
	if w.Player.Y > a.Bottom || w.Player.Y <= a.Top {
		w.Player.VY *= -w.Config.Physics.Restitution
		if w.Player.Y > a.Bottom {
			w.Player.Y = a.BottomSnap
		} else {
			w.Player.Y = a.TopSnap
		}
		out.WallBounce = true
	}

	// Player - paddles
	ball := w.Player.Bounds()
	touching := ball.Intersects(w.Left.Bounds()) || ball.Intersects(w.Right.Bounds())
	if touching && !(w.Config.Physics.SingleHitPerOverlap && w.overlapping) {
		if w.Player.VX > 0 {
			w.Right.VY = -w.Right.VY
		} else {
			w.Left.VY = -w.Left.VY
		}
		w.Player.VX *= -w.Config.Physics.BounceFactor
		w.Session.Score++
		w.Session.BestScore = max(w.Session.BestScore, w.Session.Score)
		out.PaddleHit = true
	}
	w.overlapping = touching

	// Paddle - arena margins
	for _, p := range []*PaddleBody{&w.Left, &w.Right} {
		if p.Y < a.PaddleTop || p.Y > a.PaddleBottom {
			p.VY = -p.VY
		}
	}

	return out
}
