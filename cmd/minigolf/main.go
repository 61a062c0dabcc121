package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"minigolf/internal/config"
	"minigolf/internal/game"

	"github.com/pkg/profile"
)

var (
	configPath  = flag.String("config", "assets/minigolf.yaml", "Path to the game config")
	profileMode = flag.String("profile", "", "Write a profile to the working directory: cpu|mem")
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		// Detect "go run" by checking if executable is in a temp/go-build directory
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var stop func()
	switch *profileMode {
	case "":
	case "cpu":
		stop = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop
	case "mem":
		stop = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop
	default:
		log.Fatalf("unknown -profile %q, want cpu or mem", *profileMode)
	}

	g := game.New(cfg, *configPath)
	err = g.Run()
	if stop != nil {
		stop()
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}
