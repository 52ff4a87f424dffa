package gamefactory

import (
	"showdown-server/pkg/deck"
	"showdown-server/pkg/showdown"
)

type texasHoldemFactory struct{}

func (t texasHoldemFactory) CreateGame(board string, hands []string) (showdown.Game, error) {
	b, err := parseBoard(board)
	if err != nil {
		return nil, err
	}

	game := showdown.TexasHoldem{Board: b, Hands: make([]deck.HandOf2, 0, len(hands))}
	err = parseHands(hands, func(cards deck.Hand) error {
		h, err := deck.NewHandOf2(cards)
		if err != nil {
			return err
		}

		game.Hands = append(game.Hands, h)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return game, nil
}

func (t texasHoldemFactory) Details() showdown.GameType {
	return showdown.TexasHoldemType
}

type omahaHoldemFactory struct{}

func (o omahaHoldemFactory) CreateGame(board string, hands []string) (showdown.Game, error) {
	b, err := parseBoard(board)
	if err != nil {
		return nil, err
	}

	game := showdown.OmahaHoldem{Board: b, Hands: make([]deck.HandOf4, 0, len(hands))}
	err = parseHands(hands, func(cards deck.Hand) error {
		h, err := deck.NewHandOf4(cards)
		if err != nil {
			return err
		}

		game.Hands = append(game.Hands, h)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return game, nil
}

func (o omahaHoldemFactory) Details() showdown.GameType {
	return showdown.OmahaHoldemType
}
