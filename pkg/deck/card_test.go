package deck

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, Rank(2), Two)
	assert.Equal(t, Rank(11), Jack)
	assert.Equal(t, Rank(12), Queen)
	assert.Equal(t, Rank(13), King)
	assert.Equal(t, Rank(14), Ace)
	assert.Len(t, Ranks, 13)
	assert.Equal(t, []Suit{Diamonds, Clubs, Hearts, Spades}, Suits)
}

func TestRank_ordering(t *testing.T) {
	for i := 1; i < len(Ranks); i++ {
		assert.True(t, Ranks[i-1] < Ranks[i], "%s < %s", Ranks[i-1], Ranks[i])
	}

	assert.False(t, Rank(0).Valid())
	assert.False(t, Rank(15).Valid())
	assert.True(t, Ace.Valid())
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", NewCard(Two, Hearts).String())
	assert.Equal(t, "T♣", NewCard(Ten, Clubs).String())
	assert.Equal(t, "J♣", NewCard(Jack, Clubs).String())
	assert.Equal(t, "Q♢", NewCard(Queen, Diamonds).String())
	assert.Equal(t, "K♠", NewCard(King, Spades).String())
	assert.Equal(t, "A♠", NewCard(Ace, Spades).String())
}

func TestCard_Compare(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, NewCard(Two, Diamonds).Compare(NewCard(Two, Diamonds)))
	a.Equal(0, NewCard(Two, Diamonds).Compare(NewCard(Two, Hearts)))
	a.Equal(-1, NewCard(Two, Diamonds).Compare(NewCard(Three, Hearts)))
	a.Equal(1, NewCard(Three, Diamonds).Compare(NewCard(Two, Hearts)))

	// suit never breaks ties, so a stable sort keeps the input order of equal ranks
	hand := Hand{NewCard(Four, Diamonds), NewCard(Two, Hearts), NewCard(Four, Clubs)}
	sort.Stable(hand)
	a.Equal(Hand{NewCard(Two, Hearts), NewCard(Four, Diamonds), NewCard(Four, Clubs)}, hand)
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("14c")
	a.NoError(err)
	a.Equal(NewCard(Ace, Clubs), card)

	card, err = ParseCard("Kd")
	a.NoError(err)
	a.Equal(NewCard(King, Diamonds), card)

	card, err = ParseCard("th")
	a.NoError(err)
	a.Equal(NewCard(Ten, Hearts), card)

	card, err = ParseCard("10S")
	a.NoError(err)
	a.Equal(NewCard(Ten, Spades), card)

	for _, s := range []string{"", "1c", "15c", "Kx", "K", "c", "2cc"} {
		_, err = ParseCard(s)
		a.True(errors.Is(err, ErrInvalidCard), s)
	}
}

func TestParseCards(t *testing.T) {
	a := assert.New(t)

	cards, err := ParseCards("Qs, Kd Ks,7c\tJd")
	a.NoError(err)
	a.Equal("12s,13d,13s,7c,11d", cards.String())

	cards, err = ParseCards("")
	a.NoError(err)
	a.Empty(cards)

	_, err = ParseCards("Qs,Zz")
	a.ErrorIs(err, ErrInvalidCard)
}

func TestCardsFromString(t *testing.T) {
	assert.Equal(t, Hand{NewCard(Two, Clubs), NewCard(Ace, Hearts)}, CardsFromString("2c,14h"))
	assert.Panics(t, func() {
		CardsFromString("2c,bad")
	})
}
