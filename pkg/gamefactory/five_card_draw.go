package gamefactory

import (
	"fmt"
	"strings"

	"showdown-server/pkg/deck"
	"showdown-server/pkg/showdown"
)

type fiveCardDrawFactory struct{}

func (f fiveCardDrawFactory) CreateGame(board string, hands []string) (showdown.Game, error) {
	if strings.TrimSpace(board) != "" {
		return nil, fmt.Errorf("%s has no board", showdown.FiveCardDrawType)
	}

	game := showdown.FiveCardDraw{Hands: make([]deck.HandOf5, 0, len(hands))}
	err := parseHands(hands, func(cards deck.Hand) error {
		h, err := deck.NewHandOf5(cards)
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

func (f fiveCardDrawFactory) Details() showdown.GameType {
	return showdown.FiveCardDrawType
}
