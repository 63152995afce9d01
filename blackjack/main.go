// Blackjack against the computer dealer, in the terminal: line by line
// (default) or as a full screen table with -screen.
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"

	"fortio.org/blackjack"
	"fortio.org/blackjack/ansipixels"
	"fortio.org/blackjack/ansipixels/tcolor"
	"fortio.org/blackjack/assets"
	"fortio.org/blackjack/config"
	"fortio.org/blackjack/console"
	"fortio.org/blackjack/screen"
	"fortio.org/blackjack/stats"
	"fortio.org/blackjack/terminal"
	"fortio.org/cli"
	"fortio.org/log"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	screenFlag := flag.Bool("screen", false, "Full screen table view instead of the line by line console game")
	assetsFlag := flag.String("assets", "", "Directory with the card images (`dir`/Spades2.png...), table view only. "+
		"Defaults to $"+config.EnvAssets)
	dbFlag := flag.String("db", "", "SQLite `file` to record every round in. Defaults to $"+config.EnvDB)
	seedFlag := flag.Uint64("seed", 0, "Shuffle seed, 0 for random. Defaults to $"+config.EnvSeed)
	historyFlag := flag.String("history", "", "History `file` for the console answers. Defaults to $"+config.EnvHistory)
	envFlag := flag.String("env", ".env", "Environment `file` to load defaults from, empty to skip")
	borderFlag := flag.String("border", "", "Border `color` around the cards, table view only, one of "+
		tcolor.ColorHelp+" or RRGGBB")
	fpsFlag := flag.Float64("fps", 60, "How often to check for resizes and signals while waiting for a key (table view)")
	cli.Main()
	cfg, err := config.Load(*envFlag)
	if err != nil {
		return log.FErrf("Error loading config: %v", err)
	}
	if *assetsFlag == "" {
		*assetsFlag = cfg.AssetsDir
	}
	if *dbFlag == "" {
		*dbFlag = cfg.DBPath
	}
	if *historyFlag == "" {
		*historyFlag = cfg.HistoryFile
	}
	if *seedFlag == 0 {
		*seedFlag = cfg.Seed
	}
	if *fpsFlag < 1 || *fpsFlag > 100000 {
		return log.FErrf("Invalid fps (%f) must be between 1 and 100000", *fpsFlag)
	}
	var border string
	if *borderFlag != "" {
		color, err := tcolor.FromString(*borderFlag)
		if err != nil {
			return log.FErrf("Invalid border: %v", err)
		}
		border = color.Foreground()
	}
	ctx := context.Background()
	store, err := openStore(ctx, *dbFlag)
	if err != nil {
		return log.FErrf("Error opening stats: %v", err)
	}
	defer store.Close()
	newRound := roundDealer(*seedFlag)
	if *screenFlag {
		ap := ansipixels.NewAnsiPixels(*fpsFlag)
		if err = ap.Open(); err != nil {
			return log.FErrf("Error opening terminal: %v", err)
		}
		game := &screen.Game{
			AP:          ap,
			BorderColor: border,
			NewRound:    newRound,
			Store:       store,
		}
		if *assetsFlag != "" {
			game.Assets = assets.New(*assetsFlag)
		}
		return game.RunGame(ctx)
	}
	return playConsole(ctx, *historyFlag, newRound, store)
}

func openStore(ctx context.Context, path string) (stats.Store, error) {
	if path == "" {
		return &stats.Memory{}, nil
	}
	return stats.OpenSQLite(ctx, path)
}

// roundDealer returns the round factory, reproducible when seed isn't 0.
func roundDealer(seed uint64) func() (*blackjack.Round, error) {
	var rnd *rand.Rand
	if seed != 0 {
		log.Infof("Using seed %d", seed)
		rnd = rand.New(rand.NewPCG(seed, seed))
	}
	return func() (*blackjack.Round, error) {
		return blackjack.NewShuffledRound(rnd), nil
	}
}

func playConsole(ctx context.Context, history string, newRound func() (*blackjack.Round, error), store stats.Store) int {
	t, err := terminal.Open()
	if err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer t.Close()
	if t.IsTerminal() {
		t.LoggerSetup()
	}
	if err = t.SetHistoryFile(history); err != nil {
		log.Warnf("Not using history file %s: %v", history, err)
	}
	session := &console.Session{
		In:       t,
		Out:      t.Out,
		NewRound: newRound,
		Store:    store,
	}
	if err = session.Run(ctx); err != nil {
		return log.FErrf("Error: %v", err)
	}
	return 0
}
