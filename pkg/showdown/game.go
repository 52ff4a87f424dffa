package showdown

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"showdown-server/pkg/deck"
)

// ErrDuplicateCard is returned by Validate when a card is dealt twice
var ErrDuplicateCard = errors.New("duplicate card")

// GameType identifies a game variant
type GameType string

// GameType constants
const (
	TexasHoldemType  GameType = "texas-holdem"
	OmahaHoldemType  GameType = "omaha-holdem"
	FiveCardDrawType GameType = "five-card-draw"
)

// GameTypes lists every supported game type
var GameTypes = []GameType{TexasHoldemType, OmahaHoldemType, FiveCardDrawType}

var validGameTypes = map[GameType]bool{
	TexasHoldemType:  true,
	OmahaHoldemType:  true,
	FiveCardDrawType: true,
}

// HoleCards returns the number of private cards each player holds
func (g GameType) HoleCards() int {
	switch g {
	case TexasHoldemType:
		return 2
	case OmahaHoldemType:
		return 4
	case FiveCardDrawType:
		return 5
	}

	panic(fmt.Sprintf("unknown game type: %s", string(g)))
}

// UsesBoard returns true if the game has community cards
func (g GameType) UsesBoard() bool {
	return g != FiveCardDrawType
}

func (g GameType) String() string {
	switch g {
	case TexasHoldemType:
		return "Texas Hold'em"
	case OmahaHoldemType:
		return "Omaha Hold'em"
	case FiveCardDrawType:
		return "Five-Card Draw"
	}

	panic(fmt.Sprintf("unknown game type: %s", string(g)))
}

// MarshalJSON encodes to JSON
func (g GameType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		HoleCards int    `json:"holeCards"`
		UsesBoard bool   `json:"usesBoard"`
	}{
		ID:        string(g),
		Name:      g.String(),
		HoleCards: g.HoleCards(),
		UsesBoard: g.UsesBoard(),
	})
}

// GameTypeFromString returns the game type from a string
func GameTypeFromString(s string) (GameType, error) {
	gameType := GameType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := validGameTypes[gameType]; ok {
		return gameType, nil
	}

	return "", fmt.Errorf("invalid game type: %s", s)
}

// Game is a showdown waiting to be ranked
// It is one of TexasHoldem, OmahaHoldem or FiveCardDraw.
type Game interface {
	Type() GameType
	Players() int

	// cards returns every card in play, used for validation
	cards() deck.Hand
}

// TexasHoldem is a Texas Hold'em showdown
type TexasHoldem struct {
	Board deck.Board
	Hands []deck.HandOf2
}

// Type returns TexasHoldemType
func (TexasHoldem) Type() GameType {
	return TexasHoldemType
}

// Players returns the number of hands
func (g TexasHoldem) Players() int {
	return len(g.Hands)
}

func (g TexasHoldem) cards() deck.Hand {
	cards := g.Board.Cards()
	for _, hand := range g.Hands {
		cards = append(cards, hand[:]...)
	}

	return cards
}

// OmahaHoldem is an Omaha Hold'em showdown
type OmahaHoldem struct {
	Board deck.Board
	Hands []deck.HandOf4
}

// Type returns OmahaHoldemType
func (OmahaHoldem) Type() GameType {
	return OmahaHoldemType
}

// Players returns the number of hands
func (g OmahaHoldem) Players() int {
	return len(g.Hands)
}

func (g OmahaHoldem) cards() deck.Hand {
	cards := g.Board.Cards()
	for _, hand := range g.Hands {
		cards = append(cards, hand[:]...)
	}

	return cards
}

// FiveCardDraw is a Five-Card Draw showdown
type FiveCardDraw struct {
	Hands []deck.HandOf5
}

// Type returns FiveCardDrawType
func (FiveCardDraw) Type() GameType {
	return FiveCardDrawType
}

// Players returns the number of hands
func (g FiveCardDraw) Players() int {
	return len(g.Hands)
}

func (g FiveCardDraw) cards() deck.Hand {
	cards := make(deck.Hand, 0, len(g.Hands)*5)
	for _, hand := range g.Hands {
		cards = append(cards, hand[:]...)
	}

	return cards
}

// Validate returns ErrDuplicateCard if any card appears more than once across the board and the hands
// Ranking does not require it, it is meant for callers that accept cards from outside.
func Validate(game Game) error {
	if card, ok := game.cards().Duplicate(); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
	}

	return nil
}
