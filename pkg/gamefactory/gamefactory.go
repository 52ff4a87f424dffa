package gamefactory

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
	"showdown-server/pkg/deck"
	"showdown-server/pkg/showdown"
)

// ErrNoPlayers is returned when a showdown has no hands
var ErrNoPlayers = errors.New("at least one hand is required")

var factories = map[string]GameFactory{
	string(showdown.TexasHoldemType):  texasHoldemFactory{},
	string(showdown.OmahaHoldemType):  omahaHoldemFactory{},
	string(showdown.FiveCardDrawType): fiveCardDrawFactory{},
}

// GameFactory creates a showdown from cards in text form
type GameFactory interface {
	CreateGame(board string, hands []string) (showdown.Game, error)
	Details() showdown.GameType
}

// Get returns a factory by the given name
func Get(name string) (GameFactory, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("no factory with name: %s", name)
	}

	return factory, nil
}

// Names returns the name of every factory, sorted
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Showdown is a showdown as read from a request or a file
type Showdown struct {
	Name  string   `yaml:"name,omitempty" json:"name,omitempty"`
	Game  string   `yaml:"game" json:"game"`
	Board string   `yaml:"board,omitempty" json:"board,omitempty"`
	Hands []string `yaml:"hands" json:"hands"`
}

// Create builds and validates the game described by s
func Create(s Showdown) (showdown.Game, error) {
	factory, err := Get(s.Game)
	if err != nil {
		return nil, err
	}

	if len(s.Hands) == 0 {
		return nil, ErrNoPlayers
	}

	game, err := factory.CreateGame(s.Board, s.Hands)
	if err != nil {
		return nil, err
	}

	if err := showdown.Validate(game); err != nil {
		return nil, err
	}

	return game, nil
}

type showdownFile struct {
	Showdowns []Showdown `yaml:"showdowns"`
}

// LoadFile reads a YAML list of showdowns
func LoadFile(path string) ([]Showdown, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var f showdownFile
	if err := yaml.NewDecoder(file).Decode(&f); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}

	return f.Showdowns, nil
}

// parseHands parses every hand and hands it to build, which checks its size
func parseHands(hands []string, build func(cards deck.Hand) error) error {
	for i, h := range hands {
		cards, err := deck.ParseCards(h)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		if err := build(cards); err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
	}

	return nil
}

func parseBoard(board string) (deck.Board, error) {
	cards, err := deck.ParseCards(board)
	if err != nil {
		return deck.Board{}, fmt.Errorf("board: %w", err)
	}

	b, err := deck.NewBoard(cards)
	if err != nil {
		return deck.Board{}, fmt.Errorf("board: %w", err)
	}

	return b, nil
}
