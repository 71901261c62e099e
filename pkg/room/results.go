package room

import "context"

// ResultStore persists round results for human participants
type ResultStore interface {
	// RecordResult adds a win or a loss to the named participant's tallies
	RecordResult(ctx context.Context, username string, win bool) error
}

// Outcome is one participant's result against the dealer
type Outcome int

// outcomes
const (
	OutcomePush Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// outcome applies the standard blackjack comparison: a busted participant
// always loses; otherwise a busted dealer loses; otherwise the higher score
// wins and equal scores push.
func outcome(score int, bust bool, dealerScore int, dealerBust bool) Outcome {
	switch {
	case bust:
		return OutcomeLoss
	case dealerBust:
		return OutcomeWin
	case score > dealerScore:
		return OutcomeWin
	case score < dealerScore:
		return OutcomeLoss
	}

	return OutcomePush
}
