package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_outcome(t *testing.T) {
	tests := []struct {
		name        string
		score       int
		bust        bool
		dealerScore int
		dealerBust  bool
		expected    Outcome
	}{
		{"bust always loses", 22, true, 24, true, OutcomeLoss},
		{"dealer bust wins", 13, false, 22, true, OutcomeWin},
		{"higher score wins", 20, false, 19, false, OutcomeWin},
		{"lower score loses", 18, false, 19, false, OutcomeLoss},
		{"equal scores push", 19, false, 19, false, OutcomePush},
		{"twenty-one beats dealer twenty", 21, false, 20, false, OutcomeWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, outcome(tt.score, tt.bust, tt.dealerScore, tt.dealerBust))
		})
	}
}
