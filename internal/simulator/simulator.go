package simulator

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/statistics"
)

// DefaultTimeout bounds a single round. A round that runs this long has hung
// (an agent stuck waiting, a loop that never terminates) and is a batch
// error, unlike a round that merely fails.
const DefaultTimeout = 30 * time.Second

// Config holds configuration for running a simulation batch
type Config struct {
	Rounds  int
	Timeout time.Duration
	Clock   quartz.Clock
	Logger  *log.Logger
}

// Simulator plays a batch of rounds through one engine and aggregates the
// per-round net rewards.
type Simulator struct {
	config Config
	engine *game.Engine
}

// New creates a simulator over the given engine
func New(config Config, engine *game.Engine) *Simulator {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config, engine: engine}
}

// Run plays every round and returns the batch statistics. A round that runs
// the shoe dry is logged, counted as failed, and excluded from the average;
// the batch continues. Any other round error, including a timeout, aborts
// the batch.
func (s *Simulator) Run() (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	for round := 0; round < s.config.Rounds; round++ {
		reward, err := s.playRound()
		if err != nil {
			if errors.Is(err, deck.ErrShoeExhausted) {
				s.config.Logger.Warn("round aborted",
					"round", round+1, "error", err)
				stats.AddFailure()
				continue
			}
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}
		stats.Add(reward)
	}
	return stats, nil
}

type roundResult struct {
	reward float64
	err    error
}

// playRound runs one round under the timeout guard
func (s *Simulator) playRound() (float64, error) {
	resultCh := make(chan roundResult, 1)
	go func() {
		reward, err := s.engine.PlayRound()
		resultCh <- roundResult{reward: reward, err: err}
	}()

	timedOut := make(chan struct{})
	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case result := <-resultCh:
		return result.reward, result.err
	case <-timedOut:
		return 0, fmt.Errorf("round timed out after %v", s.config.Timeout)
	}
}

// PrintSummary writes the batch results. Quiet mode prints only the average,
// matching the silent CLI flag's contract.
func PrintSummary(w io.Writer, stats *statistics.Statistics, quiet bool) {
	if quiet {
		fmt.Fprintf(w, "Average points: %g\n", stats.Mean())
		return
	}
	fmt.Fprintf(w, "\nRounds played: %d\n", stats.Rounds)
	if stats.Failed > 0 {
		fmt.Fprintf(w, "Rounds failed (excluded from average): %d\n", stats.Failed)
	}
	low, high := stats.ConfidenceInterval95()
	fmt.Fprintf(w, "Average points: %g\n", stats.Mean())
	fmt.Fprintf(w, "Std dev: %.4f, 95%% CI: [%.4f, %.4f]\n", stats.StdDev(), low, high)
}
