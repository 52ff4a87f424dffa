package mux

import (
	"net/http"

	"showdown-server/pkg/gamefactory"
)

func (m *Mux) getGames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := gamefactory.Names()
		games := make([]interface{}, 0, len(names))
		for _, name := range names {
			factory, err := gamefactory.Get(name)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			games = append(games, factory.Details())
		}

		writeJSON(w, http.StatusOK, games)
	}
}
