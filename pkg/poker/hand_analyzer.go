package poker

import (
	"fmt"

	"showdown-server/pkg/deck"
)

// HandAnalyzer classifies a five-card variant
type HandAnalyzer struct {
	variant Variant

	// sorted high to low
	cards deck.Hand
	quads []deck.Rank
	trips []deck.Rank
	pairs []deck.Rank

	flush    bool
	straight deck.Rank

	combination Combination
}

// matcher returns the combination if the analyzed cards qualify for it
type matcher func(h *HandAnalyzer) (Combination, bool)

// matchers are checked in order, strongest kind first
var matchers = []matcher{
	(*HandAnalyzer).getStraightFlush,
	(*HandAnalyzer).getFourOfAKind,
	(*HandAnalyzer).getFullHouse,
	(*HandAnalyzer).getFlush,
	(*HandAnalyzer).getStraight,
	(*HandAnalyzer).getThreeOfAKind,
	(*HandAnalyzer).getTwoPairs,
	(*HandAnalyzer).getPair,
	(*HandAnalyzer).getHighCard,
}

// NewHandAnalyzer will return a new HandAnalyzer instance
func NewHandAnalyzer(variant Variant) *HandAnalyzer {
	h := &HandAnalyzer{
		variant: variant,
		cards:   variant.Cards().Sorted(),
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// Classify returns the best matching combination of the variant
func Classify(variant Variant) Combination {
	return NewHandAnalyzer(variant).GetCombination()
}

// GetCombination returns the combination the cards make
func (h *HandAnalyzer) GetCombination() Combination {
	return h.combination
}

// GetVariant returns the analyzed cards
func (h *HandAnalyzer) GetVariant() Variant {
	return h.variant
}

// analyzeHand groups the cards by rank once and checks for flushes and straights
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	counts := make(map[deck.Rank]int, len(h.cards))
	for _, card := range h.cards {
		counts[card.Rank]++
	}

	// walk the sorted cards so each group is recorded highest rank first
	seen := make(map[deck.Rank]bool, len(counts))
	for _, card := range h.cards {
		if seen[card.Rank] {
			continue
		}
		seen[card.Rank] = true

		n := counts[card.Rank]
		if n > 4 {
			n = 4
		}

		switch n {
		case 4:
			h.quads = append(h.quads, card.Rank)
		case 3:
			h.trips = append(h.trips, card.Rank)
		case 2:
			h.pairs = append(h.pairs, card.Rank)
		}
	}

	h.flush = isFlush(h.cards)
	h.straight = checkStraight(h.cards)
}

// calculateHand will determine the combination
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	for _, match := range matchers {
		if c, ok := match(h); ok {
			h.combination = c
			return
		}
	}

	panic(fmt.Sprintf("could not classify cards: %s", h.variant))
}

// kicker returns the highest rank left once the given number of cards of each rank are set aside
func (h *HandAnalyzer) kicker(used map[deck.Rank]int) deck.Rank {
	skipped := make(map[deck.Rank]int, len(used))
	for _, card := range h.cards {
		if skipped[card.Rank] < used[card.Rank] {
			skipped[card.Rank]++
			continue
		}

		return card.Rank
	}

	return 0
}

func (h *HandAnalyzer) getStraightFlush() (Combination, bool) {
	if h.flush && h.straight != 0 {
		return NewStraightFlush(h.straight), true
	}

	return Combination{}, false
}

func (h *HandAnalyzer) getFourOfAKind() (Combination, bool) {
	if len(h.quads) == 0 {
		return Combination{}, false
	}

	rank := h.quads[0]
	return NewFourOfAKind(rank, h.kicker(map[deck.Rank]int{rank: 4})), true
}

func (h *HandAnalyzer) getFullHouse() (Combination, bool) {
	if len(h.trips) == 0 || len(h.pairs) == 0 {
		return Combination{}, false
	}

	return NewFullHouse(h.trips[0], h.pairs[0]), true
}

func (h *HandAnalyzer) getFlush() (Combination, bool) {
	if !h.flush {
		return Combination{}, false
	}

	return NewFlush(h.cards[0].Rank), true
}

func (h *HandAnalyzer) getStraight() (Combination, bool) {
	if h.straight == 0 {
		return Combination{}, false
	}

	return NewStraight(h.straight), true
}

func (h *HandAnalyzer) getThreeOfAKind() (Combination, bool) {
	if len(h.trips) == 0 {
		return Combination{}, false
	}

	rank := h.trips[0]
	return NewThreeOfAKind(rank, h.kicker(map[deck.Rank]int{rank: 3})), true
}

func (h *HandAnalyzer) getTwoPairs() (Combination, bool) {
	if len(h.pairs) != 2 {
		return Combination{}, false
	}

	high, low := h.pairs[0], h.pairs[1]
	return NewTwoPairs(low, high, h.kicker(map[deck.Rank]int{high: 2, low: 2})), true
}

func (h *HandAnalyzer) getPair() (Combination, bool) {
	if len(h.pairs) != 1 {
		return Combination{}, false
	}

	rank := h.pairs[0]
	return NewPair(rank, h.kicker(map[deck.Rank]int{rank: 2})), true
}

func (h *HandAnalyzer) getHighCard() (Combination, bool) {
	return NewHighCard(h.cards[0].Rank), true
}

func isFlush(cards deck.Hand) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}
