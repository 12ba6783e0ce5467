// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"draconis/internal/app"
	"draconis/internal/config"
	"draconis/internal/defs"
	"draconis/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
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
	return config.ScreenWidth, config.ScreenHeight
}

func loadCatalog(settings config.Settings) (*defs.Catalog, error) {
	if settings.Catalog != "" {
		return defs.LoadFile(settings.Catalog)
	}
	return defs.Load()
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	catalog, err := loadCatalog(settings)
	if err != nil {
		log.Fatal(err)
	}
	scenario, err := catalog.Scenario(settings.Dungeon, settings.DifficultyMultiplier())
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.NewGame(app.Options{Settings: settings, Scenario: scenario})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("main: %s, difficulty x%.1f, seed %d", scenario.Name, settings.DifficultyMultiplier(), settings.Seed)

	face := basicfont.Face7x13
	sm := state.NewStateMachine()
	sm.OnTitle = ebiten.SetWindowTitle
	sm.SetState(state.NewTitleState(sm, face, scenario.Name, func() state.State {
		return state.NewFightState(sm, game, face)
	}))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
