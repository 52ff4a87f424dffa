package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"showdown-server/internal/config"
	"showdown-server/pkg/deck"
	"showdown-server/pkg/gamefactory"
	"showdown-server/pkg/showdown"
)

// CLI ranks the hands of one showdown given on the command line, or of every showdown in a file
type CLI struct {
	Hands []string `arg:"" optional:"" help:"Player hands, one argument per player (e.g. 'Kh 2c')"`
	Game  string   `short:"g" help:"Game to play" enum:"texas-holdem,omaha-holdem,five-card-draw" default:"texas-holdem"`
	Board string   `short:"b" help:"Community cards (e.g. 'Qs Kd Ks 7c Jd')"`
	File  string   `short:"f" help:"YAML file of showdowns" type:"existingfile"`
	JSON  bool     `help:"Print the ranked showdowns as JSON"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Rank poker hands at showdown."))

	if err := run(context.Background(), cli, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

type result struct {
	Name   string                `json:"name,omitempty"`
	Game   showdown.GameType     `json:"game"`
	Board  string                `json:"board,omitempty"`
	Hands  []showdown.RankedHand `json:"hands"`
	Groups []showdown.Group      `json:"groups"`
}

func run(ctx context.Context, cli CLI, w io.Writer) error {
	showdowns, err := loadShowdowns(cli)
	if err != nil {
		return err
	}

	cfg := config.Instance()
	ranker := showdown.NewRanker(logrus.StandardLogger(), showdown.Options{
		Workers:           cfg.Showdown.Workers,
		ParallelThreshold: cfg.Showdown.ParallelThreshold,
	})

	results := make([]result, 0, len(showdowns))
	for i, s := range showdowns {
		game, err := gamefactory.Create(s)
		if err != nil {
			return fmt.Errorf("showdown %d: %w", i+1, err)
		}

		ranked, err := ranker.RankHands(ctx, game)
		if err != nil {
			return err
		}

		results = append(results, result{
			Name:   s.Name,
			Game:   game.Type(),
			Board:  s.Board,
			Hands:  ranked,
			Groups: showdown.SortHands(showdown.GroupHands(ranked)),
		})
	}

	if cli.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}

		if err := displayResult(w, r); err != nil {
			return err
		}
	}

	return nil
}

func loadShowdowns(cli CLI) ([]gamefactory.Showdown, error) {
	if cli.File != "" {
		if len(cli.Hands) > 0 {
			return nil, fmt.Errorf("hands cannot be given with a file")
		}

		return gamefactory.LoadFile(cli.File)
	}

	if len(cli.Hands) == 0 {
		return nil, fmt.Errorf("at least one hand or a file is required")
	}

	return []gamefactory.Showdown{{
		Game:  cli.Game,
		Board: cli.Board,
		Hands: cli.Hands,
	}}, nil
}

func displayResult(w io.Writer, r result) error {
	title := r.Game.String()
	if r.Name != "" {
		title = r.Name + " (" + title + ")"
	}

	fmt.Fprintf(w, "%s\n", headerStyle.Render(title))
	if r.Board != "" {
		board, err := deck.ParseCards(r.Board)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s %s\n", categoryStyle.Render("board"), formatCards(board))
	}
	fmt.Fprintln(w)

	winners := make(map[string]bool)
	for _, hand := range showdown.Winners(r.Groups) {
		winners[hand.String()] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t\n",
		headerStyle.Render("hand"),
		headerStyle.Render("best"),
		headerStyle.Render("combination"))

	for _, h := range r.Hands {
		combination := h.Combination.String()
		if winners[h.Cards.String()] {
			combination = winStyle.Render(combination + " *")
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t\n",
			handStyle.Render(formatCards(h.Cards)),
			formatCards(h.Variant.Cards()),
			combination)
	}

	return tw.Flush()
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, card.String())
	}

	return strings.Join(parts, " ")
}
