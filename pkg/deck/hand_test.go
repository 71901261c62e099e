package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	hand := make(Hand, 0)
	assert.Nil(t, hand.FirstCard())

	hand.AddCard(CardFromString("2c"))
	hand.AddCard(CardFromString("14s"))

	assert.Equal(t, 2, len(hand))
	assert.True(t, hand.FirstCard().Equal(CardFromString("2c")))
	assert.Equal(t, "2c,14s", hand.String())
}

func TestHand_Clone(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c"))

	clone := hand.Clone()
	clone[0] = CardFromString("14s")

	assert.Equal(t, "2c,3c", hand.String())
	assert.Equal(t, "14s,3c", clone.String())
}
