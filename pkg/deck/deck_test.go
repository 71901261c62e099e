package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *d.Cards[51])
}

func TestDeck_Shuffle(t *testing.T) {
	d := New()
	before := d.HashCode()

	d.Shuffle(1)
	assert.Equal(t, 52, d.CardsLeft())
	assert.NotEqual(t, before, d.HashCode())
	assert.Equal(t, int64(1), d.GetSeed())

	// every (rank, suit) pair must appear exactly once
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	assert.Equal(t, 52, len(seen))

	shuffled := d.HashCode()
	d.Shuffle(2)
	assert.NotEqual(t, shuffled, d.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if d.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := d.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	d.Shuffle(0)
	if !d.CanDraw(52) {
		t.Errorf("expected Shuffle() to rebuild the deck")
	}
}
