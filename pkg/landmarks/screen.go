package landmarks

import (
	"time"

	"github.com/tourguide/landmarks/pkg/landmarks/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// screen is a controller driven by runScreen. Input handling and update
// never touch SDL so controllers can be exercised without a window.
type screen interface {
	handleInput(ev *internal.Event, now time.Time)
	update(now time.Time)
	render(window *internal.Window, now time.Time)
	finished() bool
}

// runScreen pumps input into s and redraws it until s finishes. quit is
// true when the window was closed or the power button pressed.
func runScreen(s screen) (quit bool, err error) {
	window := internal.GetWindow()
	processor := internal.GetInputProcessor()
	if window == nil || processor == nil {
		return false, ErrNotInitialized
	}

	for !s.finished() {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch event.(type) {
			case *sdl.QuitEvent:
				return true, nil
			default:
				if inputEvent := processor.ProcessSDLEvent(event); inputEvent != nil {
					s.handleInput(inputEvent, time.Now())
				}
			}
		}

		now := time.Now()
		s.update(now)

		window.Clear()
		s.render(window, now)
		window.Present()
	}

	return false, nil
}
