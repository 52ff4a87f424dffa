package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	cards := New()
	a.Len(cards, 52)
	a.Equal(NewCard(Two, Diamonds), cards[0])
	a.Equal(NewCard(Ace, Spades), cards[51])

	_, dup := cards.Duplicate()
	a.False(dup)
}
