package showdown

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown-server/pkg/deck"
)

func TestGameType(t *testing.T) {
	a := assert.New(t)

	a.Equal(2, TexasHoldemType.HoleCards())
	a.Equal(4, OmahaHoldemType.HoleCards())
	a.Equal(5, FiveCardDrawType.HoleCards())

	a.True(TexasHoldemType.UsesBoard())
	a.True(OmahaHoldemType.UsesBoard())
	a.False(FiveCardDrawType.UsesBoard())

	a.Equal("Omaha Hold'em", OmahaHoldemType.String())
	a.PanicsWithValue("unknown game type: razz", func() {
		_ = GameType("razz").String()
	})

	b, err := json.Marshal(TexasHoldemType)
	a.NoError(err)
	a.JSONEq(`{"id":"texas-holdem","name":"Texas Hold'em","holeCards":2,"usesBoard":true}`, string(b))

	a.Equal(TexasHoldemType, TexasHoldem{}.Type())
	a.Equal(OmahaHoldemType, OmahaHoldem{}.Type())
	a.Equal(FiveCardDrawType, FiveCardDraw{}.Type())
}

func TestGameTypeFromString(t *testing.T) {
	a := assert.New(t)

	gt, err := GameTypeFromString(" Five-Card-Draw ")
	a.NoError(err)
	a.Equal(FiveCardDrawType, gt)

	gt, err = GameTypeFromString("razz")
	a.EqualError(err, "invalid game type: razz")
	a.Equal(GameType(""), gt)
}

func TestValidate(t *testing.T) {
	a := assert.New(t)

	a.NoError(Validate(testTexasHoldem()))
	a.NoError(Validate(omahaFromDeck(11)))

	game := testTexasHoldem()
	game.Hands = append(game.Hands, handOf2("Ks,2d"))
	err := Validate(game)
	a.True(errors.Is(err, ErrDuplicateCard))
	a.EqualError(err, "duplicate card: K♠")

	draw := FiveCardDraw{Hands: []deck.HandOf5{
		handOf5("2c,3c,4c,5c,6c"),
		handOf5("7c,8c,9c,Tc,6c"),
	}}
	a.ErrorIs(Validate(draw), ErrDuplicateCard)
}
