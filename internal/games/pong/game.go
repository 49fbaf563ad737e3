// Package pong implements single-player wall pong: one paddle at the bottom
// of the screen, a ball bouncing off the other three walls, and a running
// count of hits and misses.
//
// All positions and velocities are integer pixels. The game has no notion
// of time; the caller advances it one fixed tick at a time with Step.
package pong

import (
	"github.com/vovakirdan/pocket-pong/internal/config"
	"github.com/vovakirdan/pocket-pong/internal/core"
)

// Ball is the ball's top-left corner and per-tick velocity.
type Ball struct {
	X, Y   int
	VX, VY int
}

// Paddle is the horizontal position of the paddle's left edge. Its row is
// fixed by the configuration.
type Paddle struct {
	X int
}

// Score counts returns and failures since the last reset.
type Score struct {
	Hits   int
	Misses int
}

// Event reports what happened to the ball during a Step.
type Event int

const (
	EventNone Event = iota
	EventHit
	EventMiss
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	default:
		return "none"
	}
}

// StepResult is returned by Step.
type StepResult struct {
	Event Event
	Score Score
}

// Game holds the ball, paddle and score. It is not safe for concurrent use.
type Game struct {
	cfg    config.PongConfig
	ball   Ball
	paddle Paddle
	score  Score
	tick   uint64
}

// New creates a game with the given configuration, already reset.
// The configuration is expected to have passed Validate.
func New(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// Reset centers the paddle and ball, serves down-right at base speed and
// zeroes the score.
func (g *Game) Reset() {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	speed := g.cfg.BallSpeed(0)

	g.paddle = Paddle{X: w/2 - g.cfg.Paddle.Width/2}
	g.ball = Ball{X: w / 2, Y: h / 2, VX: speed, VY: speed}
	g.score = Score{}
	g.tick = 0
}

// Step advances the ball by one tick and resolves wall, paddle and floor
// contact. The paddle must already be in its final position for the tick.
func (g *Game) Step() StepResult {
	g.tick++

	b := &g.ball
	size := g.cfg.Ball.Size
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height

	b.X += b.VX
	b.Y += b.VY

	// Walls reflect without repositioning the ball.
	if b.X <= 0 || b.X+size >= w {
		b.VX = -b.VX
	}
	if b.Y <= 0 {
		b.VY = -b.VY
	}

	event := EventNone
	band := g.PaddleY()
	if b.Y+size >= band {
		px, pw := g.paddle.X, g.cfg.Paddle.Width
		switch {
		case b.X+size >= px && b.X <= px+pw:
			event = EventHit
			b.Y = band - size - g.cfg.Ball.HitMargin
			g.score.Hits++
			speed := g.cfg.BallSpeed(g.score.Hits)
			if b.VX < 0 {
				b.VX = -speed
			} else {
				b.VX = speed
			}
			b.VY = -speed
		case b.Y+size >= h:
			event = EventMiss
			g.score.Misses++
			speed := g.cfg.BallSpeed(0)
			b.X, b.Y = w/2, h/2
			if b.VX > 0 {
				b.VX = -speed
			} else {
				b.VX = speed
			}
			b.VY = speed
		}
	}

	return StepResult{Event: event, Score: g.score}
}

// MovePaddle shifts the paddle by dx pixels and clamps it to the screen.
func (g *Game) MovePaddle(dx int) {
	g.paddle.X += dx
	g.ClampPaddle()
}

// ClampPaddle keeps the paddle fully on screen.
func (g *Game) ClampPaddle() {
	g.paddle.X = core.Clamp(g.paddle.X, 0, g.cfg.Screen.Width-g.cfg.Paddle.Width)
}

// PaddleY returns the top row of the paddle band.
func (g *Game) PaddleY() int {
	return g.cfg.PaddleY()
}

// Ball returns the current ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns the current paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Score returns the current score.
func (g *Game) Score() Score {
	return g.score
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// BallRect returns the ball's on-screen square.
func (g *Game) BallRect() core.Rect {
	return core.NewRect(g.ball.X, g.ball.Y, g.cfg.Ball.Size, g.cfg.Ball.Size)
}

// PaddleRect returns the paddle's on-screen rectangle.
func (g *Game) PaddleRect() core.Rect {
	return core.NewRect(g.paddle.X, g.PaddleY(), g.cfg.Paddle.Width, g.cfg.Paddle.Height)
}
