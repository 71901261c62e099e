package blackjack

// hidden is the placeholder for the dealer's hole card and score while the
// round is active
const hidden = "hidden"

// CardState is a card as rendered to clients
type CardState struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// ParticipantState is a participant's public view. While the dealer's hole
// card is concealed, the first card and the value are replaced with
// placeholders.
type ParticipantState struct {
	Name  string       `json:"name"`
	Hand  []*CardState `json:"hand"`
	Value interface{}  `json:"value"`
	Stand bool         `json:"stand"`
	Bust  bool         `json:"bust"`
	IsBot bool         `json:"isBot"`
}

// State is the full room snapshot broadcast to every session after a
// state-affecting event
type State struct {
	Players []*ParticipantState `json:"players"`
	Dealer  *ParticipantState   `json:"dealer"`
	Turn    *string             `json:"turn"`
	Started bool                `json:"started"`
	Over    bool                `json:"over"`
}

// State returns the current room snapshot. The dealer's hole card stays
// hidden until the round is over.
func (g *Game) State() *State {
	players := make([]*ParticipantState, len(g.participants))
	for i, p := range g.participants {
		players[i] = participantState(p, false)
	}

	over := g.IsOver()

	var turn *string
	if current := g.CurrentTurn(); current != nil {
		name := current.name
		turn = &name
	}

	return &State{
		Players: players,
		Dealer:  participantState(g.dealer, !over),
		Turn:    turn,
		Started: g.started,
		Over:    over,
	}
}

func participantState(p *Participant, hideFirstCard bool) *ParticipantState {
	hand := make([]*CardState, len(p.hand))
	for i, card := range p.hand {
		hand[i] = &CardState{
			Rank: card.RankString(),
			Suit: string(card.Suit),
		}
	}

	var value interface{} = p.Score()
	if hideFirstCard {
		if p.hand.FirstCard() != nil {
			hand[0] = &CardState{Rank: hidden, Suit: hidden}
		}

		value = "?"
	}

	return &ParticipantState{
		Name:  p.name,
		Hand:  hand,
		Value: value,
		Stand: p.stand,
		Bust:  p.bust,
		IsBot: p.kind == KindBot,
	}
}
