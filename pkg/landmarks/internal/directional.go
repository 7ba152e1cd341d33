package internal

import (
	"time"

	"github.com/tourguide/landmarks/pkg/landmarks/constants"
)

// Direction is a vertical scroll direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// Delta is -1 for up, +1 for down and 0 otherwise.
func (d Direction) Delta() int {
	switch d {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	default:
		return 0
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return ""
	}
}

// DirectionalInput tracks a held up/down button and fires repeats: the first
// after repeatDelay, then one every repeatInterval.
type DirectionalInput struct {
	held           Direction
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld updates the held state from a virtual button event at now.
// Returns true if the button was Up or Down.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	var dir Direction
	switch button {
	case constants.VirtualButtonUp:
		dir = DirectionUp
	case constants.VirtualButtonDown:
		dir = DirectionDown
	default:
		return false
	}

	if held {
		d.held = dir
		d.lastRepeatTime = now
		d.hasRepeated = false
	} else if d.held == dir {
		d.Reset()
	}
	return true
}

// Update returns the direction to repeat at now, or DirectionNone.
// Call it every frame.
func (d *DirectionalInput) Update(now time.Time) Direction {
	if d.held == DirectionNone {
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.held
	}
	return DirectionNone
}

// Reset clears the held direction and timing state.
func (d *DirectionalInput) Reset() {
	d.held = DirectionNone
	d.hasRepeated = false
}
