package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// Namespace and key under which the pong high score is stored.
const (
	HighScoreNamespace = "pong"
	HighScoreKey       = "highscore"
)

// HighScores adapts a Store to the controller's high score contract:
// loading never fails (0 when unavailable) and saving is best-effort.
// A nil Store is valid and behaves as storage that is always unavailable.
type HighScores struct {
	store  *Store
	logger *log.Logger
}

// NewHighScores wraps store. Failures are reported as warnings on logger.
func NewHighScores(store *Store, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScores{store: store, logger: logger}
}

// LoadHighScore returns the stored high score, or 0 if none is stored or the
// store cannot be read.
func (h *HighScores) LoadHighScore() int {
	if h == nil || h.store == nil {
		return 0
	}
	e, err := h.store.Get(HighScoreNamespace, HighScoreKey)
	if err != nil {
		h.logger.Warn("high score unavailable", "error", err)
		return 0
	}
	if e == nil || e.Value < 0 {
		return 0
	}
	return e.Value
}

// SaveHighScore persists score. The stored value never decreases, so several
// sessions sharing one store keep the best of them.
func (h *HighScores) SaveHighScore(score int) {
	if h == nil || h.store == nil {
		return
	}
	if _, err := h.store.Raise(HighScoreNamespace, HighScoreKey, score); err != nil {
		h.logger.Warn("high score not saved", "score", score, "error", err)
	}
}

// ResetHighScore clears the stored high score.
func (h *HighScores) ResetHighScore() error {
	if h == nil || h.store == nil {
		return nil
	}
	return h.store.Delete(HighScoreNamespace, HighScoreKey)
}
