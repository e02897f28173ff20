package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mytikas/engine"
	"mytikas/experiments"
	"mytikas/experiments/metrics"
	"mytikas/game"
	"mytikas/meta"
	"mytikas/searcher"
)

const usage = `usage: mytikas [-log-level=LEVEL] COMMAND [flags]

commands:
  play        play a game between two strategies
  turns       list the legal turns of a state
  actions     list the actions that extend a partial turn
  apply       apply a turn history to a state
  choose      let a strategy choose a turn
  evaluate    print the heuristic value of a state
  experiment  run the strategy, gods or throughput experiment
`

func main() {
	logLevel := flag.String("log-level", "info", "zerolog level: debug, info, warn, error")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		log.Error().Err(err).Msgf("%s failed", flag.Arg(0))
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	state := fs.String("state", "", "encoded state (default: the initial state)")

	switch command {
	case "play":
		light := fs.String("light", "random", "strategy descriptor for light")
		dark := fs.String("dark", fmt.Sprintf("minimax,max_depth=%d", meta.MAX_DEPTH), "strategy descriptor for dark")
		maxTurns := fs.Int("max-turns", meta.MAX_TURNS, "stop after this many turns")
		compact := fs.Bool("compact", false, "print the compact history")
		fs.Parse(args)
		return play(*state, *light, *dark, *maxTurns, *compact)
	case "turns":
		fs.Parse(args)
		s, err := decodeState(*state)
		if err != nil {
			return err
		}
		for _, turn := range game.GenerateTurns(s) {
			fmt.Println(turn)
		}
		return nil
	case "actions":
		prefix := fs.String("prefix", "", "partial turn, e.g. \"Z@e1\"")
		fs.Parse(args)
		return actions(*state, *prefix)
	case "apply":
		history := fs.String("history", "", "turns separated by ';'")
		compact := fs.Bool("compact", false, "the history is in compact form")
		fs.Parse(args)
		return apply(*state, *history, *compact)
	case "choose":
		strategy := fs.String("strategy", fmt.Sprintf("minimax,max_depth=%d", meta.MAX_DEPTH), "strategy descriptor")
		fs.Parse(args)
		s, err := decodeState(*state)
		if err != nil {
			return err
		}
		turn, err := searcher.ChooseTurn(s, *strategy)
		if err != nil {
			return err
		}
		fmt.Println(turn)
		return nil
	case "evaluate":
		fs.Parse(args)
		s, err := decodeState(*state)
		if err != nil {
			return err
		}
		fmt.Println(game.Evaluate(s))
		return nil
	case "experiment":
		kind := fs.String("kind", "strategy", "strategy, gods or throughput")
		out := fs.String("out", "results", "directory for the CSV records")
		games := fs.Int("games", meta.GAMES, "games per match up, or rounds for gods")
		strategies := fs.String("strategies", fmt.Sprintf("random;minimax,max_depth=%d", meta.MAX_DEPTH),
			"strategy descriptors separated by ';'")
		fs.Parse(args)
		return experiment(*kind, *out, *games, *strategies)
	}
	return fmt.Errorf("unknown command %q", command)
}

func decodeState(text string) (game.GameState, error) {
	if text == "" {
		return game.InitialState(), nil
	}
	return game.DecodeState(text)
}

func play(state, light, dark string, maxTurns int, compact bool) error {
	s, err := decodeState(state)
	if err != nil {
		return err
	}
	lightStrategy, err := searcher.New(light, metrics.NewCollector())
	if err != nil {
		return err
	}
	darkStrategy, err := searcher.New(dark, metrics.NewCollector())
	if err != nil {
		return err
	}
	e := engine.LocalEngine(s, lightStrategy, darkStrategy)
	e.MaxTurns = maxTurns
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	if compact {
		fmt.Println(game.FormatCompactHistory(e.History))
	} else {
		fmt.Println(game.FormatHistory(e.History))
	}
	fmt.Println(gameMetric.FinalState)
	if winner == "" {
		winner = "none"
	}
	fmt.Printf("winner: %s after %d turns in %s\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

func actions(state, prefix string) error {
	s, err := decodeState(state)
	if err != nil {
		return err
	}
	var partial game.Turn
	if prefix != "" {
		if partial, err = game.ParseTurn(prefix); err != nil {
			return err
		}
	}
	next, complete := game.NextActions(game.GenerateTurns(s), partial)
	for _, a := range game.PreferredActions(next) {
		fmt.Println(a)
	}
	if complete {
		fmt.Println("(complete)")
	}
	return nil
}

func apply(state, history string, compact bool) error {
	s, err := decodeState(state)
	if err != nil {
		return err
	}
	parse := game.ParseHistory
	if compact {
		parse = game.ParseCompactHistory
	}
	turns, err := parse(history)
	if err != nil {
		return err
	}
	states, err := game.Replay(s, turns)
	if err != nil {
		return err
	}
	final := s
	if len(states) > 0 {
		final = states[len(states)-1]
	}
	fmt.Println(final)
	if winner, over := final.Winner(); over {
		fmt.Printf("winner: %s\n", winner)
	}
	return nil
}

func experiment(kind, out string, games int, strategies string) error {
	descriptors := strings.Split(strategies, ";")
	switch kind {
	case "strategy":
		_, err := experiments.RunStrategyExperiment(out, descriptors, games)
		return err
	case "gods":
		strength, err := experiments.RunGodStrengthExperiment(out, descriptors[0], games)
		if err != nil {
			return err
		}
		fmt.Println(strength)
		return nil
	case "throughput":
		_, err := experiments.RunThroughputExperiment(out, games)
		return err
	}
	return fmt.Errorf("unknown experiment %q", kind)
}
