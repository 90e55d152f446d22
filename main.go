package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"pig-dice/assets"
	"pig-dice/config"
	"pig-dice/game"
	"pig-dice/input"
	"pig-dice/logger"
	"pig-dice/screens"
	"pig-dice/sound"
	"pig-dice/systems"
)

func main() {
	viewSheets := flag.Bool("view-sheets", false, "show every indexed image of the sprite sheets and exit")
	flag.Parse()

	// The debug log receives every log record so F1 can show it in game.
	debugLog := systems.NewMessageLog(500)

	settings, err := config.Load()
	if err != nil {
		logger.Init("info", false, debugLog)
		logger.Fatal("failed to load settings", "err", err)
	}
	logger.Init(settings.LogLevel, settings.LogJSON, debugLog)
	log := logger.With("component", "main")

	library, err := assets.New(settings.AssetsDir)
	if err != nil {
		logger.Fatal("failed to load assets", "dir", settings.AssetsDir, "err", err)
	}

	if *viewSheets {
		viewer := NewSheetViewer(library)
		ebiten.SetWindowSize(viewer.Layout(0, 0))
		ebiten.SetWindowTitle("Pig Dice - Sprite Sheets")
		if err := ebiten.RunGame(viewer); err != nil {
			logger.Fatal("sheet viewer stopped", "err", err)
		}
		return
	}

	rules := assets.DefaultRules()
	if settings.RulesFile != "" {
		if rules, err = assets.LoadRules(settings.RulesFile); err != nil {
			logger.Fatal("failed to load rules", "file", settings.RulesFile, "err", err)
		}
	}

	audio := sound.NewAudioSystem(settings.Volume, settings.Mute)
	defer audio.Close()
	if settings.Music != "" {
		if err := audio.PlayBGM(settings.Music); err != nil {
			log.Warn("background music disabled", "file", settings.Music, "err", err)
		}
	}

	mouse := input.NewMouse()
	width, height := config.GetScreenDimensions()
	ctx := &screens.Context{
		Assets:   library,
		Options:  settings.Options(),
		Pointer:  mouse,
		Rules:    rules,
		Sounds:   audio,
		Random:   game.NewSource(settings.Seed),
		DebugLog: debugLog,
		Logger:   logger.Get(),
		Width:    width,
		Height:   height,
	}

	g := NewGame(ctx, mouse)

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Pig Dice")
	ebiten.SetTPS(settings.TPS)
	ebiten.SetFullscreen(settings.Fullscreen)

	log.Info("starting", "target", settings.Target, "color", settings.DiceColor, "assets", settings.AssetsDir)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop stopped", "err", err)
	}
}
