package showdown

import (
	"fmt"
	"sort"

	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
)

// RankedHand is a player's cards together with the best combination they make
type RankedHand struct {
	Cards       deck.Hand         `json:"cards"`
	Combination poker.Combination `json:"combination"`
	Variant     poker.Variant     `json:"variant"`
}

// RankHands returns the best combination of every hand in the game, in the order the hands were given
func RankHands(game Game) []RankedHand {
	ranked := make([]RankedHand, game.Players())
	for i := range ranked {
		ranked[i] = rankPlayer(game, i)
	}

	return ranked
}

// rankPlayer searches the best combination of the i-th hand of the game
func rankPlayer(game Game, i int) RankedHand {
	var cards deck.Hand
	var best Best

	switch g := game.(type) {
	case TexasHoldem:
		cards = g.Hands[i].Cards()
		best = BestTexasHoldem(g.Board, g.Hands[i])
	case OmahaHoldem:
		cards = g.Hands[i].Cards()
		best = BestOmahaHoldem(g.Board, g.Hands[i])
	case FiveCardDraw:
		cards = g.Hands[i].Cards()
		best = BestFiveCardDraw(g.Hands[i])
	default:
		panic(fmt.Sprintf("unknown game: %T", game))
	}

	return RankedHand{
		Cards:       cards,
		Combination: best.Combination,
		Variant:     best.Variant,
	}
}

// Group is every hand that tied on the same combination
type Group struct {
	Combination poker.Combination `json:"combination"`
	Hands       []deck.Hand       `json:"hands"`
}

// Groups maps each combination to the hands that made it
type Groups map[poker.Combination]*Group

// NewGroups returns an empty set of groups
func NewGroups() Groups {
	return make(Groups)
}

// AddHand files the hand under its combination
// Hands within a group keep the order they were added in.
func (g Groups) AddHand(hand deck.Hand, combination poker.Combination) {
	grp, ok := g[combination]
	if !ok {
		grp = &Group{
			Combination: combination,
			Hands:       make([]deck.Hand, 0, 1),
		}
		g[combination] = grp
	}

	grp.Hands = append(grp.Hands, hand)
}

// GroupHands partitions the ranked hands by exact combination
func GroupHands(hands []RankedHand) Groups {
	groups := NewGroups()
	for _, h := range hands {
		groups.AddHand(h.Cards, h.Combination)
	}

	return groups
}

// SortHands returns the groups from the weakest combination to the strongest
// The winners are in the last group.
func SortHands(groups Groups) []Group {
	sorted := make([]Group, 0, len(groups))
	for _, grp := range groups {
		sorted = append(sorted, *grp)
	}

	sort.Sort(sortByCombination(sorted))
	return sorted
}

// Winners returns the hands of the strongest group, or nil if there are no groups
func Winners(sorted []Group) []deck.Hand {
	if len(sorted) == 0 {
		return nil
	}

	return sorted[len(sorted)-1].Hands
}

type sortByCombination []Group

func (s sortByCombination) Len() int {
	return len(s)
}

func (s sortByCombination) Less(i, j int) bool {
	return s[i].Combination.Less(s[j].Combination)
}

func (s sortByCombination) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
