package blackjack

import "errors"

// ErrRoundNotStarted is returned when a play is attempted before the round has been dealt
var ErrRoundNotStarted = errors.New("round has not started")

// ErrRoundIsOver is returned when a play is attempted after the round has ended
var ErrRoundIsOver = errors.New("round is over")

// ErrNotTheirTurn is returned when a participant acts out of turn
var ErrNotTheirTurn = errors.New("it is not their turn")

// ErrParticipantResolved is returned when a stood or busted participant attempts a play
var ErrParticipantResolved = errors.New("participant has already stood or busted")

// ErrSittingOut is returned when a participant who joined mid-round attempts a play
var ErrSittingOut = errors.New("participant sits out until the next round")

// ErrParticipantNotFound is returned when the participant is not in the game
var ErrParticipantNotFound = errors.New("participant not found")
