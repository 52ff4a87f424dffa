package deck

// New returns the 52 cards of a standard deck, unshuffled
// Cards are listed suit by suit in Suits order, each suit from Two to Ace.
func New() Hand {
	cards := make(Hand, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}
