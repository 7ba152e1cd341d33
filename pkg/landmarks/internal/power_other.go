//go:build !linux

package internal

import "errors"

// PowerButtonWatcher is only available on Linux.
type PowerButtonWatcher struct{}

func WatchPowerButton(string, func()) (*PowerButtonWatcher, error) {
	return nil, errors.New("power button watching requires linux")
}

func (w *PowerButtonWatcher) Close() {}
