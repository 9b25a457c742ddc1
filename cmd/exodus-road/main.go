package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/appengine-ltd/exodus-road/internal/config"
	"github.com/appengine-ltd/exodus-road/internal/game"
	"github.com/appengine-ltd/exodus-road/internal/gui"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		contentPath string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "journey seed (0 = time-based)")
	flag.StringVar(&contentPath, "content", "", "YAML content pack overriding events and encounters")
	flag.Parse()

	if showVersion {
		fmt.Printf("Exodus Road %s (%s) %s\n", version, commit, date)
		return
	}

	cfg := config.Load()
	if contentPath == "" {
		contentPath = cfg.ContentPack
	}

	var pack *game.ContentPack
	if contentPath != "" {
		loaded, err := game.LoadContentPack(contentPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pack = loaded
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Seed:      seed,
		Runtime:   cfg,
		Content:   pack,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
