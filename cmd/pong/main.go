package main

import (
	"flag"
	"log"
	"os"

	"github.com/plus3/pong/internal/config"
	"github.com/plus3/pong/internal/platform"
)

func main() {
	configPath := flag.String("config", "pong.toml", "Path to the TOML config file. A missing file uses defaults.")
	debug := flag.Bool("debug", false, "Show the debug overlay and log match events.")
	scale := flag.Int("scale", 1, "Window scale factor.")
	writeConfig := flag.Bool("write-config", false, "Print the effective configuration as TOML and exit.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override the file and environment only when given explicitly.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug.Overlay = *debug
			cfg.Debug.LogEvents = *debug
		case "scale":
			cfg.Window.Scale = *scale
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *writeConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		return
	}

	if err := platform.Run(cfg); err != nil {
		log.Fatalf("Game failed: %v", err)
	}
	log.Println("Bye.")
}
