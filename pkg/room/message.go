package room

import (
	"blackjack-server/pkg/blackjack"
)

// inbound actions
const (
	actionAddBot = "add_bot"
	actionStart  = "start"
	actionHit    = "hit"
	actionStand  = "stand"
)

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action string `json:"action"`
}

// StateMessage is a room snapshot pushed to every connected session
type StateMessage struct {
	Type  string           `json:"type"`
	State *blackjack.State `json:"state"`
}

func newStateMessage(state *blackjack.State) *StateMessage {
	return &StateMessage{
		Type:  "state",
		State: state,
	}
}
