//go:build linux

package internal

import (
	"fmt"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const (
	powerShortPressMax = 2 * time.Second
	powerCoolDown      = time.Second
)

// PowerButtonWatcher reads the power key from an evdev device and calls
// onPress for every short press. Long presses are left to the firmware.
type PowerButtonWatcher struct {
	device  *evdev.InputDevice
	tracker powerPressTracker
	onPress func()
	closed  *atomic.Bool
	wg      sync.WaitGroup
}

// WatchPowerButton opens devicePath and starts watching it.
func WatchPowerButton(devicePath string, onPress func()) (*PowerButtonWatcher, error) {
	device, err := evdev.Open(devicePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", devicePath, err)
	}

	w := &PowerButtonWatcher{
		device:  device,
		tracker: powerPressTracker{shortPressMax: powerShortPressMax, coolDown: powerCoolDown},
		onPress: onPress,
		closed:  atomic.NewBool(false),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *PowerButtonWatcher) run() {
	defer w.wg.Done()

	for {
		ev, err := w.device.ReadOne()
		if err != nil {
			if !w.closed.Load() {
				GetInternalLogger().Error("Power button device read failed", "error", err)
			}
			return
		}

		if ev.Type != evdev.EV_KEY || ev.Code != evdev.KEY_POWER {
			continue
		}

		if w.tracker.handle(ev.Value, time.Now()) {
			GetInternalLogger().Debug("Power button short press")
			w.onPress()
		}
	}
}

// Close stops the watcher and waits for its goroutine.
func (w *PowerButtonWatcher) Close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	w.device.Close()
	w.wg.Wait()
}

// powerPressTracker turns key down/up values into short-press decisions.
type powerPressTracker struct {
	shortPressMax time.Duration
	coolDown      time.Duration
	pressedAt     time.Time
	lastFired     time.Time
}

// handle takes an evdev key value (1 down, 0 up, 2 repeat) and reports
// whether a short press just completed.
func (t *powerPressTracker) handle(value int32, now time.Time) bool {
	switch value {
	case 1:
		t.pressedAt = now
	case 0:
		if t.pressedAt.IsZero() {
			return false
		}
		held := now.Sub(t.pressedAt)
		t.pressedAt = time.Time{}

		if held > t.shortPressMax {
			return false
		}
		if !t.lastFired.IsZero() && now.Sub(t.lastFired) < t.coolDown {
			return false
		}
		t.lastFired = now
		return true
	}
	return false
}
