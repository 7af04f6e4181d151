//go:build tinygo

package hal

import "machine"

// tinyGoKeys turns each rising or falling edge of a single GPIO pin into
// a KeyEnter KeyEvent whose Press field is the pin level after the edge,
// standing in for a keyboard interrupt on boards with no keyboard: the
// teacher's hal.go documents this as a deliberately low-fidelity input
// device, and spec §1 only asks that a key-press source exist, not that it
// be a real keyboard.
type tinyGoKeys struct {
	ch chan KeyEvent
}

func newTinyGoKeys(pin machine.Pin) *tinyGoKeys {
	k := &tinyGoKeys{ch: make(chan KeyEvent, 8)}
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pin.SetInterrupt(machine.PinRising|machine.PinFalling, func(p machine.Pin) {
		select {
		case k.ch <- KeyEvent{Code: KeyEnter, Press: p.Get()}:
		default:
		}
	})
	return k
}

func (k *tinyGoKeys) Events() <-chan KeyEvent { return k.ch }
