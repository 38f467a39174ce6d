// Package platform runs the game in an ebiten window.
package platform

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/ecs/debugui"
	debugui_ebiten "github.com/plus3/pong/ecs/debugui/ebiten"
	"github.com/plus3/pong/input"
	"github.com/plus3/pong/internal/config"
	"github.com/plus3/pong/pong"
)

// Game implements ebiten.Game on top of a pong.World.
type Game struct {
	world     *pong.World
	bindings  pong.Bindings
	debugKey  input.Key
	logEvents bool
	keys      input.Tracker

	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
	overlay      *ecs.Singleton[debugui.Overlay]
	inputState   *ecs.Singleton[debugui.ImguiInputState]
}

func (g *Game) Update() error {
	pollKeys(&g.keys)
	if g.keys.WasPressed(g.debugKey) {
		overlay := g.overlay.Get()
		overlay.Visible = !overlay.Visible
	}

	var controls pong.Controls
	if !g.inputState.Get().WantCaptureKeyboard {
		controls = g.bindings.Read(&g.keys)
	}
	if controls.Quit {
		return ebiten.Termination
	}

	g.imguiBackend.Get().BeginFrame()
	events := g.world.Step(controls, 1.0/float64(ebiten.TPS()))
	g.imguiBackend.Get().EndFrame()

	if g.logEvents {
		for _, e := range events {
			log.Println(e)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.world.Scene())
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(pong.ScreenWidth, pong.ScreenHeight)
	return pong.ScreenWidth, pong.ScreenHeight
}

// NewGame builds the world, the debug overlay and the window.
func NewGame(cfg *config.Config) (*Game, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	debugKey, err := cfg.DebugToggleKey()
	if err != nil {
		return nil, err
	}

	world := pong.NewWorld(cfg.Options(), debugui.RegisterDebugUIComponents)
	storage := world.Storage

	backend := debugui_ebiten.NewImguiBackend(cfg.Window.Title,
		pong.ScreenWidth*cfg.Window.Scale, pong.ScreenHeight*cfg.Window.Scale)

	g := &Game{
		world:        world,
		bindings:     bindings,
		debugKey:     debugKey,
		logEvents:    cfg.Debug.LogEvents,
		imguiBackend: ecs.NewSingleton(storage, backend),
		overlay:      ecs.NewSingleton(storage, debugui.Overlay{Visible: cfg.Debug.Overlay}),
		inputState:   ecs.NewSingleton[debugui.ImguiInputState](storage),
	}

	world.Register(&debugui.ImguiSystem{})
	debugui.SpawnDebugUI(storage, world.Scheduler)
	return g, nil
}

// Run opens the window and blocks until the game quits.
func Run(cfg *config.Config) error {
	game, err := NewGame(cfg)
	if err != nil {
		return err
	}

	ebiten.SetTPS(pong.TargetTPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log.Printf("Starting %q: %s, paddle %g, speed %g", cfg.Window.Title,
		modeLabel(cfg.Gameplay.TwoPlayer), cfg.Gameplay.PaddleHalfSize, cfg.Gameplay.Speed)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	m := game.world.Match()
	log.Printf("Game over after %d serves, score %d-%d", m.Games, m.Scores[pong.Left], m.Scores[pong.Right])
	return nil
}

func modeLabel(twoPlayer bool) string {
	if twoPlayer {
		return "two players"
	}
	return "practice"
}
