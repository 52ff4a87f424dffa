package mux

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"showdown-server/pkg/deck"
	"showdown-server/pkg/gamefactory"
	"showdown-server/pkg/showdown"
)

type showdownResponse struct {
	ID      string                `json:"id"`
	Name    string                `json:"name,omitempty"`
	Game    showdown.GameType     `json:"game"`
	Hands   []showdown.RankedHand `json:"hands"`
	Groups  []showdown.Group      `json:"groups"`
	Winners []deck.Hand           `json:"winners"`
}

func errDuplicateCard(card deck.Card) error {
	return fmt.Errorf("%w: %s", showdown.ErrDuplicateCard, card)
}

// runShowdown ranks a showdown and returns the status code to report alongside any error
func (m *Mux) runShowdown(ctx context.Context, s gamefactory.Showdown) (*showdownResponse, int, error) {
	if m.maxPlayers > 0 && len(s.Hands) > m.maxPlayers {
		return nil, http.StatusBadRequest, fmt.Errorf("too many hands: %d, the maximum is %d", len(s.Hands), m.maxPlayers)
	}

	game, err := gamefactory.Create(s)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	ranked, err := m.ranker.RankHands(ctx, game)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	groups := showdown.SortHands(showdown.GroupHands(ranked))
	resp := &showdownResponse{
		ID:      uuid.New().String(),
		Name:    s.Name,
		Game:    game.Type(),
		Hands:   ranked,
		Groups:  groups,
		Winners: showdown.Winners(groups),
	}

	m.logger.WithField("id", resp.ID).WithField("game", resp.Game).WithField("players", len(ranked)).Info("showdown")
	return resp, http.StatusOK, nil
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload gamefactory.Showdown
		if !decodeRequest(w, r, &payload) {
			return
		}

		resp, statusCode, err := m.runShowdown(r.Context(), payload)
		if err != nil {
			writeJSONError(w, statusCode, err)
			return
		}

		writeJSON(w, statusCode, resp)
	}
}
