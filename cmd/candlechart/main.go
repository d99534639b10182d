package main

import (
	"flag"
	"os"
	"runtime"

	"candlechart/internal/assets"
	"candlechart/internal/config"
	"candlechart/internal/engine"
	"candlechart/internal/utils"
)

func init() {
	// The GL context and the event queue live on one thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "candlechart.yaml", "Path to the YAML config file")
	packDir := flag.String("pack", "", "Build an asset pack from this directory and exit")
	packOut := flag.String("o", "assets.cpk", "Output path for -pack")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	utils.DebugMode = *debugFlag

	if *packDir != "" {
		if err := assets.BuildPack(*packDir, *packOut); err != nil {
			utils.Error("Failed to build asset pack: %v", err)
			os.Exit(1)
		}
		return
	}

	utils.Info("--- Candlechart Start ---")

	cfg, err := config.Load(*configPath)
	if err != nil {
		utils.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	utils.Info("Config loaded: %dx%d window, %d candles", cfg.Window.Width, cfg.Window.Height, len(cfg.Candles))

	library, err := assets.Open(cfg.AssetPack)
	if err != nil {
		utils.Error("Failed to load assets: %v", err)
		os.Exit(1)
	}

	ctx, err := engine.NewGraphicsContext(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		utils.Error("Failed to create graphics context: %v", err)
		os.Exit(1)
	}
	defer ctx.Close()

	eng, err := engine.New(cfg, library, ctx)
	if err != nil {
		utils.Error("Failed to build engine: %v", err)
		return
	}
	defer eng.Destroy()

	eng.Run()
}
