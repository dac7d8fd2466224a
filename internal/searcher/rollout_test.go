package searcher

import (
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolloutReplaysQueueBeforeRandomPlay(t *testing.T) {
	r := NewRollout(randutil.New(1))
	r.Queue(game.DoubleDown, game.Hit)

	legal := []game.Action{game.Hit, game.Stand}
	assert.Equal(t, game.DoubleDown, r.Decide(nil, legal, nil))
	assert.Equal(t, game.Hit, r.Decide(nil, legal, nil))

	// Queue drained: subsequent decisions come from the legal set.
	for i := 0; i < 20; i++ {
		action := r.Decide(nil, legal, nil)
		assert.Contains(t, legal, action)
	}
}

func TestRolloutRecordsEveryAction(t *testing.T) {
	r := NewRollout(randutil.New(1))
	r.Queue(game.Stand)

	r.Decide(nil, []game.Action{game.Hit, game.Stand}, nil)
	r.Decide(nil, []game.Action{game.Stand}, nil)

	record := r.Actions()
	require.Len(t, record, 2)
	assert.Equal(t, game.Stand, record[0])
}

func TestRolloutReset(t *testing.T) {
	r := NewRollout(randutil.New(1))
	r.Queue(game.Hit, game.Hit)
	r.Decide(nil, []game.Action{game.Hit}, nil)

	r.Reset()

	assert.Empty(t, r.Actions())
	// With an empty queue the single legal action must come back.
	assert.Equal(t, game.Stand, r.Decide(nil, []game.Action{game.Stand}, nil))
}

func TestRolloutSingleLegalAction(t *testing.T) {
	r := NewRollout(randutil.New(42))
	for i := 0; i < 10; i++ {
		assert.Equal(t, game.Stand, r.Decide(nil, []game.Action{game.Stand}, nil))
	}
}

var _ game.Agent = (*Rollout)(nil)

// Rollout has no Reset-between-rounds obligations beyond clearing state, but
// it must still satisfy the Agent contract used by the engine.
func TestRolloutIsAnAgent(t *testing.T) {
	var agent game.Agent = NewRollout(randutil.New(1))
	agent.Reset()
	action := agent.Decide(
		[]deck.Card{{Suit: "Hearts", Rank: "10", Value: 10}},
		[]game.Action{game.Hit, game.Stand},
		nil,
	)
	assert.Contains(t, []game.Action{game.Hit, game.Stand}, action)
}
