package showdown

import (
	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
)

// Best is the strongest five-card variant found for a player
type Best struct {
	Combination poker.Combination
	Variant     poker.Variant
}

// index sets, generated once
var (
	sevenChooseFive = combinations(7, 5)
	fourChooseTwo   = combinations(4, 2)
	fiveChooseThree = combinations(5, 3)
)

// combinations returns every k-sized subset of the indexes 0..n-1 in lexicographic order
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}

	var result [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		result = append(result, append([]int(nil), idx...))

		// find the rightmost index that can still move right
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}

		if i < 0 {
			return result
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// consider keeps the variant if it beats the current best
// The first variant found wins a tie.
func (b *Best) consider(v poker.Variant, first bool) {
	c := poker.Classify(v)
	if first || poker.Compare(c, b.Combination) > 0 {
		b.Combination = c
		b.Variant = v
	}
}

// BestTexasHoldem returns the best five of the seven cards made by the board and the hole cards
func BestTexasHoldem(board deck.Board, hand deck.HandOf2) Best {
	var pool [7]deck.Card
	copy(pool[:], board[:])
	copy(pool[len(board):], hand[:])

	var best Best
	for i, idx := range sevenChooseFive {
		best.consider(poker.Variant{pool[idx[0]], pool[idx[1]], pool[idx[2]], pool[idx[3]], pool[idx[4]]}, i == 0)
	}

	return best
}

// BestOmahaHoldem returns the best hand made from exactly two hole cards and exactly three board cards
func BestOmahaHoldem(board deck.Board, hand deck.HandOf4) Best {
	var best Best
	first := true
	for _, h := range fourChooseTwo {
		for _, b := range fiveChooseThree {
			best.consider(poker.Variant{hand[h[0]], hand[h[1]], board[b[0]], board[b[1]], board[b[2]]}, first)
			first = false
		}
	}

	return best
}

// BestFiveCardDraw classifies the hand as dealt
func BestFiveCardDraw(hand deck.HandOf5) Best {
	v := poker.Variant(hand)
	return Best{
		Combination: poker.Classify(v),
		Variant:     v,
	}
}
