// Package launcher hands map URIs to the host environment.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"go.uber.org/atomic"
)

// DefaultOpener is the command used to open URIs on desktop Linux.
const DefaultOpener = "xdg-open"

var (
	// ErrBusy is returned while the previous opener is still running.
	ErrBusy = errors.New("launcher: previous opener still running")

	// ErrEmptyURI is returned for an empty URI.
	ErrEmptyURI = errors.New("launcher: empty uri")
)

// URILauncher opens a URI with whatever application the host registered for it.
// The URI is passed through unmodified.
type URILauncher interface {
	Launch(ctx context.Context, uri string) error
}

// Func adapts a function to URILauncher.
type Func func(ctx context.Context, uri string) error

// Launch calls f.
func (f Func) Launch(ctx context.Context, uri string) error {
	return f(ctx, uri)
}

// Exec launches URIs by running an opener command with the URI as its last
// argument. It returns once the command has started; the child is reaped in
// the background and its exit status is only logged.
//
// The opener is not tied to the caller's context: cancelling ctx after
// Launch returns leaves the map application running. Only one opener runs at
// a time; Launch returns ErrBusy until the previous one has exited.
type Exec struct {
	command string
	args    []string
	logger  *slog.Logger

	running  *atomic.Bool
	launched *atomic.Int64
	wait     func(cmd *exec.Cmd) error
}

// NewExec creates an Exec launcher. An empty command selects DefaultOpener.
func NewExec(logger *slog.Logger, command string, args ...string) *Exec {
	if command == "" {
		command = DefaultOpener
	}
	return &Exec{
		command:  command,
		args:     args,
		logger:   logger,
		running:  atomic.NewBool(false),
		launched: atomic.NewInt64(0),
		wait:     (*exec.Cmd).Wait,
	}
}

// Launch starts the opener for uri. ctx only aborts a launch that has not
// started yet.
func (e *Exec) Launch(ctx context.Context, uri string) error {
	if uri == "" {
		return ErrEmptyURI
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !e.running.CompareAndSwap(false, true) {
		return ErrBusy
	}

	args := append(append([]string{}, e.args...), uri)
	cmd := exec.Command(e.command, args...)

	if err := cmd.Start(); err != nil {
		e.running.Store(false)
		return fmt.Errorf("launcher: start %s: %w", e.command, err)
	}

	n := e.launched.Inc()
	e.logger.Debug("Launched map opener", "command", e.command, "uri", uri, "pid", cmd.Process.Pid, "launch", n)

	go func() {
		defer e.running.Store(false)
		if err := e.wait(cmd); err != nil {
			e.logger.Warn("Map opener exited with error", "command", e.command, "uri", uri, "error", err)
		}
	}()

	return nil
}

// Running reports whether an opener started by Launch has not exited yet.
func (e *Exec) Running() bool {
	return e.running.Load()
}

// Launched returns the number of successful launches.
func (e *Exec) Launched() int64 {
	return e.launched.Load()
}

// Log is a URILauncher that only records the request. It stands in for a
// real opener in development mode.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a logging launcher.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Launch logs uri.
func (l *Log) Launch(_ context.Context, uri string) error {
	if uri == "" {
		return ErrEmptyURI
	}
	l.logger.Info("Map launch requested", "uri", uri)
	return nil
}
