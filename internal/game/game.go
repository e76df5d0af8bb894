package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/chime"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/cursor"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/surface"
	"github.com/iburimskiy/particle-field/internal/theme"
)

// Game hosts the particle field in an ebiten window. It owns the theme
// signal and the viewport the field observes, and pumps the field's frame
// queue once per draw.
type Game struct {
	cfg    *config.Config
	logger *log.Logger

	field  *field.Field
	signal *theme.Signal
	window *surface.Window
	frames frame.Queue
	layer  layer

	cursor cursor.Follower
	chime  *chime.Player
	docs   documentPicker

	outsideW, outsideH int
	scale              float64
	started            time.Time
	showStatus         bool
	lastErr            error
}

func New(cfg *config.Config, player *chime.Player, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	initial, err := theme.Parse(cfg.Theme)
	if err != nil {
		return nil, err
	}
	f, err := field.New(cfg.Particles, field.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		logger:     logger,
		field:      f,
		signal:     theme.NewSignal(initial),
		window:     surface.NewWindow(cfg.Window.Width, cfg.Window.Height),
		chime:      player,
		started:    time.Now(),
		showStatus: true,
		outsideW:   cfg.Window.Width,
		outsideH:   cfg.Window.Height,
		scale:      1,
	}
	if err := f.Attach(g.window, g.signal, &g.layer, &g.frames); err != nil {
		return nil, fmt.Errorf("attach particle field: %w", err)
	}
	logger.Printf("particle field attached: %dx%d, %s theme, %d particles",
		cfg.Window.Width, cfg.Window.Height, initial, len(f.Particles()))
	return g, nil
}

func (g *Game) Update() error {
	// Resizes land here, strictly between frames.
	g.window.Resize(g.outsideW, g.outsideH)

	mx, my := ebiten.CursorPosition()
	g.cursor.MoveTo(float64(mx), float64(my))
	g.cursor.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.cursor.Step(1 / float64(ebiten.TPS()))

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.toggleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.docs.open()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.chime != nil {
		g.chime.SetMuted(!g.chime.Muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showStatus = !g.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if res, ok := g.docs.poll(); ok {
		switch {
		case errors.Is(res.err, zenity.ErrCanceled):
		case res.err != nil:
			g.lastErr = res.err
			g.logger.Printf("document picker: %v", res.err)
		default:
			g.lastErr = nil
			g.logger.Printf("document selected: %s", res.path)
		}
	}
	return nil
}

func (g *Game) toggleTheme() {
	t := g.signal.Toggle()
	if g.chime != nil {
		g.chime.Play(t)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	t := g.field.Theme()
	g.drawBackground(screen, t)

	g.layer.begin()
	g.frames.Pump()
	g.layer.end()
	if g.layer.img != nil {
		screen.DrawImage(g.layer.img, nil)
	}

	g.drawCursor(screen, t)

	if g.showStatus {
		status := fmt.Sprintf("%s theme | %d particles | %s | T: theme, O: open, M: mute, H: hide",
			t, len(g.field.Particles()), formatDuration(time.Since(g.started)))
		if name := g.docs.name(); name != "" {
			status += " | " + name
		}
		if g.lastErr != nil {
			status += " | Error: " + g.lastErr.Error()
		}
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout makes the screen follow the window in device pixels, so the
// surface the field sizes itself to is the backing store, not the logical
// window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	g.scale = scale
	g.outsideW, g.outsideH = devicePixels(outsideWidth, outsideHeight, scale)
	return g.outsideW, g.outsideH
}

// Close detaches the field and frees the particle layer.
func (g *Game) Close() {
	g.field.Detach()
	g.layer.release()
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	defer g.Close()

	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
