package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/couchindex/internal/config"
	"github.com/depeter/couchindex/internal/ui"
)

// IndexConfigurable is implemented by screens that host an index bar and
// pick up [index] changes while running.
type IndexConfigurable interface {
	ApplyIndexConfig(cfg config.IndexConfig)
}

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager

	reloads <-chan *config.Config
}

// NewGame creates the Game with an empty screen stack.
func NewGame(cfg *config.Config) *Game {
	return &Game{
		Config:  cfg,
		Screens: ui.NewScreenManager(),
	}
}

// WatchConfig applies every config received on ch to the running screens.
// The channel is drained from Update, on the game loop.
func (g *Game) WatchConfig(ch <-chan *config.Config) {
	g.reloads = ch
}

func (g *Game) pumpReloads() {
	for g.reloads != nil {
		select {
		case cfg, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.applyConfig(cfg)
		default:
			return
		}
	}
}

// applyConfig takes the [index] and [ui] sections of a reloaded file. Server
// settings need a restart.
func (g *Game) applyConfig(cfg *config.Config) {
	log.Printf("Config reloaded")
	if cfg.UI.Fullscreen != g.Config.UI.Fullscreen {
		ebiten.SetFullscreen(cfg.UI.Fullscreen)
	}
	g.Config.UI = cfg.UI
	g.Config.Index = cfg.Index
	for _, s := range g.Screens.Screens() {
		if c, ok := s.(IndexConfigurable); ok {
			c.ApplyIndexConfig(cfg.Index)
		}
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	g.pumpReloads()

	if err := g.Screens.Update(); err != nil {
		return err
	}
	if g.Screens.StackSize() == 0 {
		return ebiten.Termination
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screens.Current())
}

// Layout keeps a fixed logical resolution; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ui.ScreenWidth, ui.ScreenHeight
}
