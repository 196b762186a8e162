// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-space-marine/internal/app"
	"go-space-marine/internal/config"
	"go-space-marine/internal/defs"
	"go-space-marine/internal/logging"
	"go-space-marine/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "configs/game.toml", "path to config file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(settings.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	lib, err := loadDefs(settings.Defs.Path)
	if err != nil {
		log.Fatal("load definitions", zap.Error(err))
	}

	session := func() *app.Game {
		return app.NewGame(settings, lib, log)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, session)) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, session)) // Устанавливаем состояние меню
	}
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          settings.Screen.Width,
		height:         settings.Screen.Height,
	}
	ebiten.SetWindowSize(settings.Screen.Width, settings.Screen.Height)
	ebiten.SetWindowTitle("Space Marine")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game loop", zap.Error(err))
	}
}

// loadDefs читает определения из файла или берёт встроенные.
func loadDefs(path string) (*defs.Library, error) {
	if path == "" {
		return defs.Default()
	}
	return defs.LoadFile(path)
}
