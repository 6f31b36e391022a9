package game

import "math"

// NoScorer is returned by Step when the ball did not touch the floor this tick.
const NoScorer = -1

// Step advances the world by one fixed timestep and returns the index of the
// slime that won a rally point, or NoScorer.
//
// Order matters: the slime collision check runs last so a ball touching a
// slime on the tick it would land is redirected before the next tick's floor
// check sees it.
func Step(w *World) int {
	w.Tick++

	for _, s := range w.Slimes {
		s.X += s.VX
		s.Y += s.VY
		s.VY += SlimeGravity
		if s.Y >= ArenaHeight {
			s.Y = ArenaHeight
			s.VY = 0
			s.Jumping = false
		}
		if s.X < SlimeRadius {
			s.X = SlimeRadius
		}
		if s.X > ArenaWidth-SlimeRadius {
			s.X = ArenaWidth - SlimeRadius
		}
	}

	b := w.Ball
	b.X += b.VX
	b.Y += b.VY
	b.VY += BallGravity

	scorer := NoScorer
	if b.Y > ArenaHeight-BallRadius {
		// The point goes to whichever half the ball did NOT land in.
		if b.X < ArenaWidth/2 {
			scorer = 1
		} else {
			scorer = 0
		}
		w.Slimes[scorer].Score++
		w.Ball = NewBall(w.rng)
		b = w.Ball
	}

	if b.X < BallRadius || b.X > ArenaWidth-BallRadius {
		b.VX = -b.VX
	}

	if b.Y < BallRadius {
		b.Y = BallRadius
		b.VY = -b.VY
	}

	if math.Abs(b.X-ArenaWidth/2) < NetHalfWidth+BallRadius && b.Y > ArenaHeight-NetHeight {
		if b.VX > 0 {
			b.X = ArenaWidth/2 - (NetHalfWidth + BallRadius)
		} else {
			b.X = ArenaWidth/2 + (NetHalfWidth + BallRadius)
		}
		b.VX = -b.VX
	}

	for _, s := range w.Slimes {
		dx := b.X - s.X
		dy := b.Y - s.Y
		if math.Hypot(dx, dy) < KickRadius {
			// Contact always imparts a fixed-magnitude outward velocity
			// along the center line, not a physical bounce.
			angle := math.Atan2(dy, dx)
			b.VX = math.Cos(angle) * KickSpeed
			b.VY = math.Sin(angle) * KickSpeed
			b.X = s.X + math.Cos(angle)*KickRadius
			b.Y = s.Y + math.Sin(angle)*KickRadius
		}
	}

	return scorer
}
