package deck

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidSize is returned when a fixed-size card container is built from the wrong number of cards
var ErrInvalidSize = errors.New("invalid number of cards")

// Hand represents a collection of cards
// It sorts by rank only.
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Same(card) {
			return true
		}
	}

	return false
}

// Duplicate returns the first card that appears more than once
func (h Hand) Duplicate() (Card, bool) {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return c, true
		}

		seen[c] = true
	}

	return Card{}, false
}

// Sorted returns a copy of the hand sorted by rank, highest first
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Stable(sort.Reverse(h2))

	return h2
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

func checkSize(kind string, want int, cards []Card) error {
	if len(cards) != want {
		return fmt.Errorf("%w: %s requires %d cards, got %d", ErrInvalidSize, kind, want, len(cards))
	}

	return nil
}

// Board is the five community cards
type Board [5]Card

// NewBoard returns a board from exactly five cards
func NewBoard(cards []Card) (Board, error) {
	var b Board
	if err := checkSize("board", len(b), cards); err != nil {
		return b, err
	}

	copy(b[:], cards)
	return b, nil
}

// Cards returns a copy of the cards on the board
func (b Board) Cards() Hand {
	return append(Hand(nil), b[:]...)
}

func (b Board) String() string {
	return CardsToString(b[:])
}

// HandOf2 is a player's hole cards in Texas Hold'em
type HandOf2 [2]Card

// NewHandOf2 returns a hand from exactly two cards
func NewHandOf2(cards []Card) (HandOf2, error) {
	var h HandOf2
	if err := checkSize("hand", len(h), cards); err != nil {
		return h, err
	}

	copy(h[:], cards)
	return h, nil
}

// Cards returns a copy of the cards in the hand
func (h HandOf2) Cards() Hand {
	return append(Hand(nil), h[:]...)
}

// HandOf4 is a player's hole cards in Omaha Hold'em
type HandOf4 [4]Card

// NewHandOf4 returns a hand from exactly four cards
func NewHandOf4(cards []Card) (HandOf4, error) {
	var h HandOf4
	if err := checkSize("hand", len(h), cards); err != nil {
		return h, err
	}

	copy(h[:], cards)
	return h, nil
}

// Cards returns a copy of the cards in the hand
func (h HandOf4) Cards() Hand {
	return append(Hand(nil), h[:]...)
}

// HandOf5 is a player's cards in Five-Card Draw
type HandOf5 [5]Card

// NewHandOf5 returns a hand from exactly five cards
func NewHandOf5(cards []Card) (HandOf5, error) {
	var h HandOf5
	if err := checkSize("hand", len(h), cards); err != nil {
		return h, err
	}

	copy(h[:], cards)
	return h, nil
}

// Cards returns a copy of the cards in the hand
func (h HandOf5) Cards() Hand {
	return append(Hand(nil), h[:]...)
}
