package poker

import (
	"fmt"

	"showdown-server/pkg/deck"
)

// Compare returns -1 if a is weaker than b, 1 if a is stronger and 0 if they tie
// The kind decides first; within a kind the tie-break ranks are compared in order.
func Compare(a, b Combination) int {
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}

		return 1
	}

	switch a.Kind {
	case HighCard, Flush:
		return compareRanks(a.Rank, b.Rank)
	case Pair, ThreeOfAKind, FourOfAKind:
		return compareRanks(a.Rank, b.Rank, a.Kicker, b.Kicker)
	case TwoPairs:
		return compareRanks(a.High, b.High, a.Low, b.Low, a.Kicker, b.Kicker)
	case Straight, StraightFlush:
		return compareRanks(straightValue(a.Rank), straightValue(b.Rank))
	case FullHouse:
		return compareRanks(a.Three, b.Three, a.Two, b.Two)
	}

	panic(fmt.Sprintf("unknown kind: %d", a.Kind))
}

// Less returns true if c is weaker than other
func (c Combination) Less(other Combination) bool {
	return Compare(c, other) < 0
}

// Equal returns true if c and other tie
func (c Combination) Equal(other Combination) bool {
	return Compare(c, other) == 0
}

// Max returns the strongest of the combinations
// The first one wins a tie. Max panics when called without combinations.
func Max(combinations ...Combination) Combination {
	if len(combinations) == 0 {
		panic("poker.Max called without combinations")
	}

	best := combinations[0]
	for _, c := range combinations[1:] {
		if Compare(c, best) > 0 {
			best = c
		}
	}

	return best
}

// straightValue maps the wheel sentinel below every other straight rank
func straightValue(rank deck.Rank) deck.Rank {
	if rank == deck.Ace {
		return deck.Ace - 13
	}

	return rank
}

// compareRanks compares pairs of ranks (a1, b1, a2, b2, ...) until one pair differs
func compareRanks(ranks ...deck.Rank) int {
	for i := 0; i+1 < len(ranks); i += 2 {
		switch {
		case ranks[i] < ranks[i+1]:
			return -1
		case ranks[i] > ranks[i+1]:
			return 1
		}
	}

	return 0
}
