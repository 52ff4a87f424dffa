package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"showdown-server/internal/config"
	"showdown-server/pkg/showdown"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	ranker  *showdown.Ranker
	logger  logrus.FieldLogger

	// maxPlayers is the largest number of hands accepted in a single showdown
	maxPlayers int
}

// NewMux returns a new HTTP mux
func NewMux(version string, cfg config.Config) *Mux {
	logger := logrus.StandardLogger()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		logger:  logger,
		ranker: showdown.NewRanker(logger, showdown.Options{
			Workers:           cfg.Showdown.Workers,
			ParallelThreshold: cfg.Showdown.ParallelThreshold,
		}),
		maxPlayers: cfg.Showdown.MaxPlayers,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/games").Handler(this.getGames())
	r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())
	r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())
	r.Methods(http.MethodGet).Path("/showdown/ws").Handler(this.getShowdownWS())

	return this
}
