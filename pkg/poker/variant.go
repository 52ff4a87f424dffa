package poker

import (
	"fmt"

	"showdown-server/pkg/deck"
)

// Variant is a set of exactly five cards, the unit the classifier works on
// Cards are not checked for uniqueness.
type Variant [5]deck.Card

// NewVariant returns a variant from exactly five cards
func NewVariant(cards []deck.Card) (Variant, error) {
	var v Variant
	if len(cards) != len(v) {
		return v, fmt.Errorf("%w: variant requires %d cards, got %d", deck.ErrInvalidSize, len(v), len(cards))
	}

	copy(v[:], cards)
	return v, nil
}

// MustVariant is like NewVariant but panics on error
func MustVariant(cards []deck.Card) Variant {
	v, err := NewVariant(cards)
	if err != nil {
		panic(err)
	}

	return v
}

// Cards returns a copy of the cards in the variant
func (v Variant) Cards() deck.Hand {
	return append(deck.Hand(nil), v[:]...)
}

func (v Variant) String() string {
	return deck.CardsToString(v[:])
}
