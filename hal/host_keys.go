//go:build !tinygo && cgo

package hal

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var rgbaBackground = color.RGBA{R: 12, G: 16, B: 24, A: 255}

// hostKeys polls ebiten's input state once per frame and turns arrow/enter/
// escape transitions into KeyEvents. It exists to give the demo a real,
// asynchronous keyboard interrupt source (spec §1: "keyboard I/O... is
// assumed") instead of a synthetic one.
type hostKeys struct {
	ch chan KeyEvent
}

func newHostKeys() *hostKeys {
	return &hostKeys{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeys) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeys) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}
	check := func(key ebiten.Key, code KeyCode) {
		if inpututil.IsKeyJustPressed(key) {
			emit(code, true)
		}
		if inpututil.IsKeyJustReleased(key) {
			emit(code, false)
		}
	}
	check(ebiten.KeyArrowUp, KeyUp)
	check(ebiten.KeyArrowDown, KeyDown)
	check(ebiten.KeyArrowLeft, KeyLeft)
	check(ebiten.KeyArrowRight, KeyRight)
	check(ebiten.KeyEnter, KeyEnter)
	check(ebiten.KeyEscape, KeyEscape)
}

// RunWindow opens a small status window. build receives the HAL so the
// caller can wire a kernel to it, and returns the tick and key callbacks
// the window's frame loop should drive. It blocks until the window closes.
func RunWindow(build func(HAL) (onTick func(), onKey func(KeyEvent))) error {
	h := New(time.Millisecond).(*hostHAL)
	onTick, onKey := build(h)
	g := &hostGame{h: h, onTick: onTick, onKey: onKey}
	ebiten.SetWindowTitle("yak kernel simulation")
	ebiten.SetWindowSize(480, 160)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *hostHAL
	onTick func()
	onKey  func(KeyEvent)
}

func (g *hostGame) Update() error {
	g.h.keys.poll()
	for {
		select {
		case ev := <-g.h.keys.ch:
			if g.onKey != nil {
				g.onKey(ev)
			}
			continue
		default:
		}
		break
	}
	// Drain whatever ticks the clock's own goroutine queued since the last
	// frame, through the Clock interface rather than a concrete field.
	clockTicks := g.h.Clock().Ticks()
	if g.onTick != nil {
		for {
			select {
			case <-clockTicks:
				g.onTick()
				continue
			default:
			}
			break
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	screen.Fill(rgbaBackground)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 480, 160
}
