package showdown

import (
	"showdown-server/pkg/deck"
)

func board(cards string) deck.Board {
	b, err := deck.NewBoard(deck.CardsFromString(cards))
	if err != nil {
		panic(err)
	}

	return b
}

func handOf2(cards string) deck.HandOf2 {
	h, err := deck.NewHandOf2(deck.CardsFromString(cards))
	if err != nil {
		panic(err)
	}

	return h
}

func handOf4(cards string) deck.HandOf4 {
	h, err := deck.NewHandOf4(deck.CardsFromString(cards))
	if err != nil {
		panic(err)
	}

	return h
}

func handOf5(cards string) deck.HandOf5 {
	h, err := deck.NewHandOf5(deck.CardsFromString(cards))
	if err != nil {
		panic(err)
	}

	return h
}

// the board and hands shared by the scenario tests
const testBoard = "Qs,Kd,Ks,7c,Jd"

func testTexasHoldem() TexasHoldem {
	return TexasHoldem{
		Board: board(testBoard),
		Hands: []deck.HandOf2{
			handOf2("Kh,2c"),
			handOf2("Kc,7d"),
			handOf2("Ad,Th"),
			handOf2("6d,6h"),
		},
	}
}

// omahaFromDeck deals n Omaha hands from an unshuffled deck, after the board
func omahaFromDeck(n int) OmahaHoldem {
	cards := deck.New()
	b, _ := deck.NewBoard(cards[:5])
	game := OmahaHoldem{Board: b}
	for i := 0; i < n; i++ {
		h, _ := deck.NewHandOf4(cards[5+i*4 : 9+i*4])
		game.Hands = append(game.Hands, h)
	}

	return game
}
