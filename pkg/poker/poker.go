package poker

import (
	"encoding/json"
	"fmt"

	"showdown-server/pkg/deck"
)

// Kind is a poker hand category, i.e., full house
type Kind int

// Constants for kind, weakest first
const (
	HighCard Kind = iota
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Kinds lists every kind from weakest to strongest
var Kinds = []Kind{HighCard, Pair, TwoPairs, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush}

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		panic(fmt.Sprintf("unknown kind: %d", k))
	}
}

// ID returns the identifier used in JSON payloads
func (k Kind) ID() string {
	switch k {
	case HighCard:
		return "high-card"
	case Pair:
		return "pair"
	case TwoPairs:
		return "two-pairs"
	case ThreeOfAKind:
		return "three-of-a-kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full-house"
	case FourOfAKind:
		return "four-of-a-kind"
	case StraightFlush:
		return "straight-flush"
	default:
		panic(fmt.Sprintf("unknown kind: %d", k))
	}
}

// Combination is the classified value of five cards
//
// Only the fields used by Kind are set, the rest are left at zero:
//
//	HighCard, Flush:                  Rank
//	Pair, ThreeOfAKind, FourOfAKind:  Rank, Kicker
//	TwoPairs:                         Low, High, Kicker
//	FullHouse:                        Three, Two
//	Straight, StraightFlush:          Rank
//
// For straights Rank is the lowest card of the run, except Ace which marks
// the wheel (A-2-3-4-5). Broadway has a Rank of Ten.
// Use the New* constructors so that two equal combinations are also == and
// can be used as map keys.
type Combination struct {
	Kind   Kind
	Rank   deck.Rank
	Kicker deck.Rank
	Low    deck.Rank
	High   deck.Rank
	Three  deck.Rank
	Two    deck.Rank
}

// NewHighCard returns a high card combination
func NewHighCard(rank deck.Rank) Combination {
	return Combination{Kind: HighCard, Rank: rank}
}

// NewPair returns a pair combination
func NewPair(rank, kicker deck.Rank) Combination {
	return Combination{Kind: Pair, Rank: rank, Kicker: kicker}
}

// NewTwoPairs returns a two pair combination
// The paired ranks can be supplied in either order.
func NewTwoPairs(low, high, kicker deck.Rank) Combination {
	if low > high {
		low, high = high, low
	}

	return Combination{Kind: TwoPairs, Low: low, High: high, Kicker: kicker}
}

// NewThreeOfAKind returns a three of a kind combination
func NewThreeOfAKind(rank, kicker deck.Rank) Combination {
	return Combination{Kind: ThreeOfAKind, Rank: rank, Kicker: kicker}
}

// NewStraight returns a straight whose lowest card is rank, or the wheel if rank is an Ace
func NewStraight(rank deck.Rank) Combination {
	return Combination{Kind: Straight, Rank: rank}
}

// NewFlush returns a flush with rank as its highest card
func NewFlush(rank deck.Rank) Combination {
	return Combination{Kind: Flush, Rank: rank}
}

// NewFullHouse returns a full house
func NewFullHouse(three, two deck.Rank) Combination {
	return Combination{Kind: FullHouse, Three: three, Two: two}
}

// NewFourOfAKind returns a four of a kind combination
func NewFourOfAKind(rank, kicker deck.Rank) Combination {
	return Combination{Kind: FourOfAKind, Rank: rank, Kicker: kicker}
}

// NewStraightFlush returns a straight flush, see NewStraight for the meaning of rank
func NewStraightFlush(rank deck.Rank) Combination {
	return Combination{Kind: StraightFlush, Rank: rank}
}

// IsWheel returns true for the A-2-3-4-5 straight or straight flush
func (c Combination) IsWheel() bool {
	return (c.Kind == Straight || c.Kind == StraightFlush) && c.Rank == deck.Ace
}

// straightBounds returns the low and high card of a straight
func (c Combination) straightBounds() (deck.Rank, deck.Rank) {
	if c.IsWheel() {
		return deck.Ace, deck.Five
	}

	return c.Rank, c.Rank + 4
}

func (c Combination) String() string {
	switch c.Kind {
	case HighCard:
		return fmt.Sprintf("%s (%s)", c.Kind, c.Rank)
	case Pair, ThreeOfAKind, FourOfAKind:
		return fmt.Sprintf("%s (%s, kicker %s)", c.Kind, c.Rank, c.Kicker)
	case TwoPairs:
		return fmt.Sprintf("%s (%s and %s, kicker %s)", c.Kind, c.High, c.Low, c.Kicker)
	case Straight, StraightFlush:
		low, high := c.straightBounds()
		return fmt.Sprintf("%s (%s to %s)", c.Kind, low, high)
	case Flush:
		return fmt.Sprintf("%s (%s high)", c.Kind, c.Rank)
	case FullHouse:
		return fmt.Sprintf("%s (%s over %s)", c.Kind, c.Three, c.Two)
	}

	panic(fmt.Sprintf("unknown kind: %d", c.Kind))
}

// MarshalJSON encodes to JSON
func (c Combination) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind        string    `json:"kind"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Rank        deck.Rank `json:"rank,omitempty"`
		Kicker      deck.Rank `json:"kicker,omitempty"`
		Low         deck.Rank `json:"low,omitempty"`
		High        deck.Rank `json:"high,omitempty"`
		Three       deck.Rank `json:"three,omitempty"`
		Two         deck.Rank `json:"two,omitempty"`
	}{
		Kind:        c.Kind.ID(),
		Name:        c.Kind.String(),
		Description: c.String(),
		Rank:        c.Rank,
		Kicker:      c.Kicker,
		Low:         c.Low,
		High:        c.High,
		Three:       c.Three,
		Two:         c.Two,
	})
}
