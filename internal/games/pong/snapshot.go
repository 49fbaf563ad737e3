package pong

// Snapshot contains the complete game state at one tick.
// Uses primitive types only for stable comparison and logging.
type Snapshot struct {
	Tick    uint64
	Ball    Ball
	PaddleX int
	Hits    int
	Misses  int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Ball:    g.ball,
		PaddleX: g.paddle.X,
		Hits:    g.score.Hits,
		Misses:  g.score.Misses,
	}
}

// ApplySnapshot restores a previously captured state.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.ball = snap.Ball
	g.paddle.X = snap.PaddleX
	g.score = Score{Hits: snap.Hits, Misses: snap.Misses}
	g.ClampPaddle()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{snap.Ball.X, snap.Ball.Y, snap.Ball.VX, snap.Ball.VY, snap.PaddleX, snap.Hits, snap.Misses} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
