package game

import "math/rand"

// Internal truth authoritative game state. One World per room, owned
// exclusively by that room's goroutine.

type World struct {
	Tick   int
	Slimes [2]*Slime // 0 = left player, 1 = right player
	Ball   *Ball

	rng *rand.Rand // serve direction only, never serialized
}

type Slime struct {
	X, Y, VX, VY float64
	Jumping      bool
	Score        int
}

type Ball struct {
	X, Y, VX, VY float64
}

func NewWorld(rng *rand.Rand) *World {
	w := &World{rng: rng}
	w.Slimes[0] = &Slime{X: ArenaWidth / 4, Y: ArenaHeight}
	w.Slimes[1] = &Slime{X: ArenaWidth * 3 / 4, Y: ArenaHeight}
	w.Ball = NewBall(rng)
	return w
}

// NewBall serves from center top, falling, with a random horizontal direction.
// Rally resets replace the ball wholesale rather than patching the old one.
func NewBall(rng *rand.Rand) *Ball {
	vx := BallServeVX
	if rng.Intn(2) == 0 {
		vx = -vx
	}
	return &Ball{
		X:  ArenaWidth / 2,
		Y:  BallResetY,
		VX: vx,
		VY: BallServeVY,
	}
}

// ResetRally zeroes both rally scores and issues a fresh ball. Used on set
// completion and on match start.
func (w *World) ResetRally() {
	w.Slimes[0].Score = 0
	w.Slimes[1].Score = 0
	w.Ball = NewBall(w.rng)
}
