package poker

import "showdown-server/pkg/deck"

// wheel is the A-5-4-3-2 straight, highest card first
var wheel = []deck.Rank{deck.Ace, deck.Five, deck.Four, deck.Three, deck.Two}

// checkStraight returns the straight rank of five cards sorted high to low, or 0
// The rank is the lowest card of the run, or an Ace for the wheel.
func checkStraight(cards deck.Hand) deck.Rank {
	if len(cards) != 5 {
		return 0
	}

	isWheel := true
	for i, card := range cards {
		if card.Rank != wheel[i] {
			isWheel = false
			break
		}
	}

	if isWheel {
		return deck.Ace
	}

	for i := 1; i < len(cards); i++ {
		if cards[i].Rank+1 != cards[i-1].Rank {
			return 0
		}
	}

	return cards[len(cards)-1].Rank
}
