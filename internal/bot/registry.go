package bot

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/searcher"
)

// Deps carries everything any agent kind might need; the registry hands each
// agent only what it uses. Constructed explicitly at startup and passed in,
// never held in package state.
type Deps struct {
	Cards       []deck.Card
	Rule        game.SplitRule
	Seed        int64
	Trials      int
	Parallelism int
	Logger      *log.Logger
	In          io.Reader
	Out         io.Writer
}

var kinds = []string{"basic", "console", "default", "mcts", "timid"}

// New builds the named agent. Unknown names return an error listing the
// registry; the caller reports it and exits non-zero.
func New(name string, deps Deps) (game.Agent, error) {
	switch name {
	case "default":
		return NewRandom(randutil.New(deps.Seed)), nil
	case "timid":
		return NewTimid(), nil
	case "basic":
		return NewBasic(), nil
	case "mcts":
		return searcher.New(deps.Cards, deps.Rule, deps.Seed, deps.Logger,
			searcher.WithTrials(deps.Trials),
			searcher.WithParallelism(deps.Parallelism)), nil
	case "console":
		return NewConsole(deps.In, deps.Out), nil
	default:
		return nil, fmt.Errorf("unknown player type %q, available options are: %s", name, NamesString())
	}
}

// Names returns the registered agent names, sorted.
func Names() []string {
	names := make([]string, len(kinds))
	copy(names, kinds)
	sort.Strings(names)
	return names
}

// NamesString renders the registered agent names as a comma-separated list.
func NamesString() string {
	return strings.Join(Names(), ", ")
}
