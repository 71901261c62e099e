package blackjack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_State_hidesDealerHoleCard(t *testing.T) {
	a := assert.New(t)

	g := NewGame()
	g.SetSeed(1)
	g.Join("alice")
	g.AddBot()
	g.Start()

	state := g.State()
	a.True(state.Started)
	a.False(state.Over)
	a.NotNil(state.Turn)
	a.Equal("alice", *state.Turn)

	a.Equal(2, len(state.Players))
	a.Equal("alice", state.Players[0].Name)
	a.False(state.Players[0].IsBot)
	a.Equal("Bot1", state.Players[1].Name)
	a.True(state.Players[1].IsBot)

	// players are fully visible
	for _, p := range state.Players {
		a.Equal(2, len(p.Hand))
		a.NotEqual(hidden, p.Hand[0].Rank)
		_, isInt := p.Value.(int)
		a.True(isInt)
	}

	// dealer's hole card and value are concealed while the round is active
	a.Equal(2, len(state.Dealer.Hand))
	a.Equal(hidden, state.Dealer.Hand[0].Rank)
	a.Equal(hidden, state.Dealer.Hand[0].Suit)
	a.NotEqual(hidden, state.Dealer.Hand[1].Rank)
	a.Equal("?", state.Dealer.Value)
}

func TestGame_State_revealsDealerWhenOver(t *testing.T) {
	a := assert.New(t)

	g := NewGame()
	g.SetSeed(1)
	g.Join("alice")
	g.Start()

	a.NoError(g.Stand("alice"))
	g.Reconcile()

	state := g.State()
	a.True(state.Over)
	a.Nil(state.Turn)
	a.NotEqual(hidden, state.Dealer.Hand[0].Rank)
	a.Equal(g.Dealer().Score(), state.Dealer.Value)
	a.True(state.Dealer.Stand)
}

func TestGame_State_json(t *testing.T) {
	a := assert.New(t)

	g := NewGame()
	g.SetSeed(1)
	g.Join("alice")

	b, err := json.Marshal(g.State())
	a.NoError(err)

	var decoded map[string]interface{}
	a.NoError(json.Unmarshal(b, &decoded))

	a.Equal(false, decoded["started"])
	a.Equal(false, decoded["over"])
	a.Nil(decoded["turn"])

	players := decoded["players"].([]interface{})
	a.Equal(1, len(players))
	alice := players[0].(map[string]interface{})
	a.Equal("alice", alice["name"])
	a.Equal(float64(0), alice["value"])
	a.Equal(false, alice["isBot"])
}
