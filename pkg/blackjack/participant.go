package blackjack

import (
	"blackjack-server/pkg/deck"
)

// ParticipantKind determines whether a participant is driven by a person or by the server
type ParticipantKind int

// participant kinds
const (
	KindHuman ParticipantKind = iota
	KindBot
	KindDealer
)

// Participant is a single seat at the blackjack table. The same logic drives
// humans, bots, and the dealer; only the kind differs.
type Participant struct {
	name  string
	kind  ParticipantKind
	hand  deck.Hand
	stand bool
	bust  bool

	// sitOut is true for a human seated while a round was active; they hold
	// no cards and are skipped until the next deal
	sitOut bool
}

func newParticipant(name string, kind ParticipantKind) *Participant {
	return &Participant{
		name: name,
		kind: kind,
		hand: make(deck.Hand, 0, 5),
	}
}

// Name returns the participant's name
func (p *Participant) Name() string {
	return p.name
}

// Kind returns the participant's kind
func (p *Participant) Kind() ParticipantKind {
	return p.kind
}

// IsBot returns true if the participant is driven by the server's bot policy
func (p *Participant) IsBot() bool {
	return p.kind == KindBot
}

// Hand returns a shallow copy of the participant's hand
func (p *Participant) Hand() deck.Hand {
	return p.hand.Clone()
}

// AddCard adds a card to the participant's hand
func (p *Participant) AddCard(card *deck.Card) {
	p.hand.AddCard(card)
}

// Stood returns true if the participant has stood
func (p *Participant) Stood() bool {
	return p.stand
}

// Busted returns true if the participant has busted
func (p *Participant) Busted() bool {
	return p.bust
}

// SittingOut returns true if the participant joined mid-round and is waiting
// for the next deal
func (p *Participant) SittingOut() bool {
	return p.sitOut
}

// resolved participants no longer take turns this round
func (p *Participant) resolved() bool {
	return p.sitOut || p.stand || p.bust
}

// Score returns the hand total with the soft-ace adjustment: aces count as 11
// until the total exceeds 21, then they drop to 1 one at a time.
func (p *Participant) Score() int {
	total := 0
	aces := 0
	for _, card := range p.hand {
		total += cardValue(card)
		if card.Rank == deck.Ace {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// markBustIfOver marks the participant as busted when their score exceeds 21.
// Busting forces an implicit stand.
func (p *Participant) markBustIfOver() {
	if p.Score() > 21 {
		p.bust = true
		p.stand = true
	}
}

// reset clears the hand and flags for a new round
func (p *Participant) reset() {
	p.hand = make(deck.Hand, 0, 5)
	p.stand = false
	p.bust = false
	p.sitOut = false
}

// cardValue returns the blackjack value of a card: face cards are worth 10,
// an ace is worth 11 before the soft-ace adjustment.
func cardValue(card *deck.Card) int {
	switch card.Rank {
	case deck.Jack, deck.Queen, deck.King:
		return 10
	case deck.Ace:
		return 11
	}

	return card.Rank
}
