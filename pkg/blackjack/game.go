package blackjack

import (
	"fmt"

	"blackjack-server/pkg/deck"
)

// DealerName is the reserved name of the house participant
const DealerName = "Dealer"

// dealerStandsAt is the score the dealer must reach before standing
const dealerStandsAt = 17

// botStandsAt is the score at which the bot policy stops hitting
const botStandsAt = 16

// Game is the state of a single blackjack room. It persists across rounds;
// a round runs from Start() until IsOver() reports true.
//
// Game performs no locking. All calls must be serialized by the owner
// (see pkg/room.Dealer).
type Game struct {
	participants      []*Participant
	nameToParticipant map[string]*Participant
	dealer            *Participant
	deck              *deck.Deck
	turn              int
	started           bool
	seed              int64
}

// NewGame returns a game with an empty table
func NewGame() *Game {
	return &Game{
		participants:      make([]*Participant, 0, 6),
		nameToParticipant: make(map[string]*Participant),
		dealer:            newParticipant(DealerName, KindDealer),
		deck:              deck.New(),
	}
}

// SetSeed fixes the shuffle seed for future rounds.
// This should only be used by tests.
func (g *Game) SetSeed(seed int64) {
	g.seed = seed
}

// Join seats a new human participant. Returns false if the name is already
// seated. Joining mid-round is tolerated; the newcomer sits out the active
// round and plays from the next deal.
func (g *Game) Join(name string) bool {
	if _, ok := g.nameToParticipant[name]; ok {
		return false
	}

	p := newParticipant(name, KindHuman)
	p.sitOut = g.roundActive()
	g.participants = append(g.participants, p)
	g.nameToParticipant[name] = p
	return true
}

// AddBot seats a bot participant with the first unused "BotN" name and
// returns that name
func (g *Game) AddBot() string {
	n := 1
	for {
		name := fmt.Sprintf("Bot%d", n)
		if _, ok := g.nameToParticipant[name]; !ok {
			p := newParticipant(name, KindBot)
			g.participants = append(g.participants, p)
			g.nameToParticipant[name] = p
			return name
		}

		n++
	}
}

// Leave removes a participant from the table and frees up their name.
// Returns false if the name is not seated.
func (g *Game) Leave(name string) bool {
	p, ok := g.nameToParticipant[name]
	if !ok {
		return false
	}

	delete(g.nameToParticipant, name)
	for i, other := range g.participants {
		if other != p {
			continue
		}

		g.participants = append(g.participants[:i], g.participants[i+1:]...)
		if g.turn > i {
			g.turn--
		}
		break
	}

	return true
}

// Start begins a new round: fresh shuffled deck, cleared hands and flags,
// turn pointer on the first participant, then two passes of cards dealt
// participant-major with the dealer receiving last each pass.
func (g *Game) Start() {
	g.deck = deck.New()
	g.deck.Shuffle(g.seed)

	for _, p := range g.participants {
		p.reset()
	}
	g.dealer.reset()
	g.turn = 0
	g.started = false

	for pass := 0; pass < 2; pass++ {
		for _, p := range g.participants {
			p.AddCard(g.draw())
		}
		g.dealer.AddCard(g.draw())
	}

	g.started = true
}

// Started returns true if a round has been dealt
func (g *Game) Started() bool {
	return g.started
}

// roundActive returns true while a dealt round still has turns to play
func (g *Game) roundActive() bool {
	return g.started && !g.IsOver()
}

// IsOver returns true once the round has started and every non-dealer
// participant has stood, busted, or is sitting out. It is recomputed on
// every call.
func (g *Game) IsOver() bool {
	if !g.started {
		return false
	}

	for _, p := range g.participants {
		if !p.resolved() {
			return false
		}
	}

	return true
}

// CurrentTurn returns the participant whose turn it is, or nil if the round
// is not active
func (g *Game) CurrentTurn() *Participant {
	if !g.started || g.IsOver() || g.turn >= len(g.participants) {
		return nil
	}

	return g.participants[g.turn]
}

// Participants returns the turn-ordered participants (excluding the dealer)
func (g *Game) Participants() []*Participant {
	return append([]*Participant{}, g.participants...)
}

// Dealer returns the house participant
func (g *Game) Dealer() *Participant {
	return g.dealer
}

// Hit draws one card into the named participant's hand. A score over 21
// busts them, which is terminal for the round.
func (g *Game) Hit(name string) error {
	p, err := g.actionable(name)
	if err != nil {
		return err
	}

	p.AddCard(g.draw())
	p.markBustIfOver()
	return nil
}

// Stand marks the named participant as stood
func (g *Game) Stand(name string) error {
	p, err := g.actionable(name)
	if err != nil {
		return err
	}

	p.stand = true
	return nil
}

// actionable validates that the named participant may act right now
func (g *Game) actionable(name string) (*Participant, error) {
	if !g.started {
		return nil, ErrRoundNotStarted
	}

	if g.IsOver() {
		return nil, ErrRoundIsOver
	}

	p, ok := g.nameToParticipant[name]
	if !ok {
		return nil, ErrParticipantNotFound
	}

	if p.sitOut {
		return nil, ErrSittingOut
	}

	if p.resolved() {
		return nil, ErrParticipantResolved
	}

	if g.participants[g.turn] != p {
		return nil, ErrNotTheirTurn
	}

	return p, nil
}

// advanceTurn scans forward for the next participant who has neither stood
// nor busted. If none remain, the dealer plays out their hand.
func (g *Game) advanceTurn() {
	for i := g.turn + 1; i < len(g.participants); i++ {
		if !g.participants[i].resolved() {
			g.turn = i
			return
		}
	}

	g.dealerPlay()
}

// dealerPlay runs the house strategy: draw below 17, then stand. A final
// score over 21 busts the dealer. This finalizes the round.
func (g *Game) dealerPlay() {
	for g.dealer.Score() < dealerStandsAt {
		g.dealer.AddCard(g.draw())
	}

	if g.dealer.Score() > 21 {
		g.dealer.bust = true
	}
	g.dealer.stand = true
}

// Reconcile settles the table after a validated mutation: it advances past
// resolved participants, plays out any bot turns, and runs the dealer once
// every seat is resolved. It returns a snapshot for every incremental state
// change so observers see bot moves one at a time.
func (g *Game) Reconcile() []*State {
	states := make([]*State, 0)

	for g.started && !g.IsOver() {
		p := g.participants[g.turn]

		if p.resolved() {
			g.advanceTurn()
			states = append(states, g.State())
			continue
		}

		if p.kind != KindBot {
			break
		}

		if p.Score() < botStandsAt {
			p.AddCard(g.draw())
			p.markBustIfOver()
		} else {
			p.stand = true
		}
		states = append(states, g.State())

		if p.resolved() {
			g.advanceTurn()
			states = append(states, g.State())
		}
	}

	// the round can end on the acting participant's own move, in which case
	// the loop above never runs and the dealer still owes their hand
	if g.started && g.IsOver() && !g.dealer.stand {
		g.dealerPlay()
		states = append(states, g.State())
	}

	return states
}

// draw takes the next card from the deck. One deck always covers the
// supported table sizes, so an exhausted deck is an invariant violation.
func (g *Game) draw() *deck.Card {
	card, err := g.deck.Draw()
	if err != nil {
		panic(err)
	}

	return card
}
