package mux

import (
	"net/http"

	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
)

type postClassifyPayload struct {
	Cards string `json:"cards"`
}

type classifyResponse struct {
	Cards       deck.Hand         `json:"cards"`
	Combination poker.Combination `json:"combination"`
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postClassifyPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		cards, err := deck.ParseCards(payload.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if card, ok := cards.Duplicate(); ok {
			writeJSONError(w, http.StatusBadRequest, errDuplicateCard(card))
			return
		}

		variant, err := poker.NewVariant(cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, classifyResponse{
			Cards:       cards,
			Combination: poker.Classify(variant),
		})
	}
}
