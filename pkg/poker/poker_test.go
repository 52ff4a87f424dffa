package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown-server/pkg/deck"
)

func TestKind_String(t *testing.T) {
	for _, k := range Kinds {
		assert.NotEmpty(t, k.String())
		assert.NotEmpty(t, k.ID())
	}

	assert.Equal(t, "Two pair", TwoPairs.String())
	assert.Equal(t, "straight-flush", StraightFlush.ID())

	assert.PanicsWithValue(t, "unknown kind: -1", func() {
		_ = Kind(-1).String()
	})
	assert.PanicsWithValue(t, "unknown kind: 9", func() {
		_ = Kind(9).ID()
	})
}

func TestCombination_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("High card (A)", NewHighCard(deck.Ace).String())
	a.Equal("Pair (J, kicker 8)", NewPair(deck.Jack, deck.Eight).String())
	a.Equal("Two pair (J and 2, kicker Q)", NewTwoPairs(deck.Jack, deck.Two, deck.Queen).String())
	a.Equal("Three of a kind (K, kicker Q)", NewThreeOfAKind(deck.King, deck.Queen).String())
	a.Equal("Straight (T to A)", NewStraight(deck.Ten).String())
	a.Equal("Straight (A to 5)", NewStraight(deck.Ace).String())
	a.Equal("Flush (K high)", NewFlush(deck.King).String())
	a.Equal("Full house (K over 7)", NewFullHouse(deck.King, deck.Seven).String())
	a.Equal("Four of a kind (7, kicker K)", NewFourOfAKind(deck.Seven, deck.King).String())
	a.Equal("Straight flush (2 to 6)", NewStraightFlush(deck.Two).String())
}

func TestNewTwoPairs(t *testing.T) {
	assert.Equal(t, NewTwoPairs(deck.Two, deck.Jack, deck.Queen), NewTwoPairs(deck.Jack, deck.Two, deck.Queen))
}

func TestCombination_IsWheel(t *testing.T) {
	assert.True(t, NewStraight(deck.Ace).IsWheel())
	assert.True(t, NewStraightFlush(deck.Ace).IsWheel())
	assert.False(t, NewStraight(deck.Ten).IsWheel())
	assert.False(t, NewFlush(deck.Ace).IsWheel())
}

func TestCombination_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewFullHouse(deck.King, deck.Seven))
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "full-house",
		"name": "Full house",
		"description": "Full house (K over 7)",
		"three": 13,
		"two": 7
	}`, string(b))
}

func TestNewVariant(t *testing.T) {
	a := assert.New(t)

	cards := deck.CardsFromString("2d,11d,14s,7d,8d")
	v, err := NewVariant(cards)
	a.NoError(err)
	a.Equal(cards, v.Cards())
	a.Equal("2d,11d,14s,7d,8d", v.String())

	_, err = NewVariant(cards[:4])
	a.ErrorIs(err, deck.ErrInvalidSize)
	a.EqualError(err, "invalid number of cards: variant requires 5 cards, got 4")

	_, err = NewVariant(append(cards, deck.CardFromString("2c")))
	a.ErrorIs(err, deck.ErrInvalidSize)

	a.Panics(func() {
		MustVariant(cards[:1])
	})
}
