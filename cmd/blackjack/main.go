package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjackforbots/internal/bot"
	"github.com/lox/blackjackforbots/internal/config"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/simulator"
)

type CLI struct {
	Player      string `arg:"" optional:"" default:"default" help:"The player type to simulate (available: ${players})"`
	Count       int    `short:"n" default:"100" help:"How many rounds to simulate"`
	Silent      bool   `short:"s" aliases:"quiet" help:"Do not narrate rounds; only the final average is printed"`
	Quiet       bool   `short:"q" hidden:""`
	RankSplit   bool   `short:"r" aliases:"rank" help:"Only allow split when both cards share a rank (default: same value)"`
	Deck        string `short:"d" default:"default" help:"The deck composition to use (available: ${decks})"`
	Seed        int64  `help:"RNG seed (default: current time)"`
	Trials      int    `default:"1000" help:"Simulated rounds per MCTS decision"`
	Parallelism int    `default:"1" help:"Concurrent rollouts per MCTS trial wave"`
	Config      string `short:"c" type:"path" help:"Optional HCL preset file; explicit flags win"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Simulate blackjack rounds and evaluate decision agents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"players": bot.NamesString(),
			"decks":   deck.NamesString(deck.Compositions(randutil.New(0))),
		},
	)
	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	preset, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	applyPreset(cli, preset)

	quiet := cli.Silent || cli.Quiet
	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	level := log.InfoLevel
	if quiet {
		level = log.ErrorLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})

	compositions := deck.Compositions(randutil.New(randutil.Derive(seed, 0)))
	composition, ok := compositions[cli.Deck]
	if !ok {
		return fmt.Errorf("invalid deck type %q, available options are: %s",
			cli.Deck, deck.NamesString(compositions))
	}

	rule := game.SameValue
	if cli.RankSplit {
		rule = game.SameRank
	}

	cards := composition.Cards()
	agent, err := bot.New(cli.Player, bot.Deps{
		Cards:       cards,
		Rule:        rule,
		Seed:        randutil.Derive(seed, 1),
		Trials:      cli.Trials,
		Parallelism: cli.Parallelism,
		Logger:      logger,
		In:          os.Stdin,
		Out:         os.Stdout,
	})
	if err != nil {
		return err
	}

	engine := game.NewEngine(cards, agent, rule, randutil.New(randutil.Derive(seed, 2)), logger)
	sim := simulator.New(simulator.Config{
		Rounds: cli.Count,
		Logger: logger,
	}, engine)

	stats, err := sim.Run()
	if err != nil {
		return err
	}
	simulator.PrintSummary(os.Stdout, stats, quiet)
	return nil
}

// applyPreset fills in settings from the config file wherever the flag was
// left at its default.
func applyPreset(cli *CLI, preset config.Preset) {
	if cli.Player == "default" && preset.Player != "" {
		cli.Player = preset.Player
	}
	if cli.Count == 100 && preset.Rounds > 0 {
		cli.Count = preset.Rounds
	}
	if cli.Seed == 0 && preset.Seed != 0 {
		cli.Seed = preset.Seed
	}
	if cli.Trials == 1000 && preset.Trials > 0 {
		cli.Trials = preset.Trials
	}
	if cli.Parallelism == 1 && preset.Parallelism > 0 {
		cli.Parallelism = preset.Parallelism
	}
	if cli.Deck == "default" && preset.Deck != "" {
		cli.Deck = preset.Deck
	}
	if preset.RankSplit {
		cli.RankSplit = true
	}
	if preset.Quiet {
		cli.Silent = true
	}
}
