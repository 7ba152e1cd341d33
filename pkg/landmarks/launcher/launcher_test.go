package launcher

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFuncReceivesURIUnmodified(t *testing.T) {
	var got string
	l := Func(func(_ context.Context, uri string) error {
		got = uri
		return nil
	})

	require.NoError(t, l.Launch(context.Background(), "geo:25.033963,121.564468"))
	assert.Equal(t, "geo:25.033963,121.564468", got)
}

func TestExecPassesURIAsLastArgument(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "uri.txt")
	e := NewExec(discardLogger(), "sh", "-c", `printf %s "$1" > "$0"`, out)

	done := make(chan struct{})
	e.wait = func(cmd *exec.Cmd) error {
		defer close(done)
		return cmd.Wait()
	}

	require.NoError(t, e.Launch(context.Background(), "geo:48.858093, 2.294694"))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("opener did not exit")
	}

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "geo:48.858093, 2.294694", string(data))
	assert.Equal(t, int64(1), e.Launched())
}

func TestExecMissingCommand(t *testing.T) {
	e := NewExec(discardLogger(), "definitely-not-a-real-opener-binary")

	err := e.Launch(context.Background(), "geo:0,0")
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Zero(t, e.Launched())

	// A failed start must not leave the launcher busy.
	err = e.Launch(context.Background(), "geo:0,0")
	assert.NotErrorIs(t, err, ErrBusy)
}

func TestExecBusyUntilOpenerExits(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	e := NewExec(discardLogger(), "sh", "-c", "exec sleep 5")
	release := make(chan struct{})
	e.wait = func(cmd *exec.Cmd) error {
		<-release
		_ = cmd.Process.Kill()
		return cmd.Wait()
	}

	require.NoError(t, e.Launch(context.Background(), "geo:25.033963,121.564468"))
	assert.True(t, e.Running())
	assert.ErrorIs(t, e.Launch(context.Background(), "geo:25.033963,121.564468"), ErrBusy)

	close(release)
	assert.Eventually(t, func() bool { return !e.Running() }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, e.Launch(context.Background(), "geo:51.178882,-1.826215"))
	assert.Eventually(t, func() bool { return !e.Running() }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(2), e.Launched())
}

func TestExecOpenerOutlivesContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	e := NewExec(discardLogger(), "sh", "-c", "exec sleep 5")
	started := make(chan *os.Process, 1)
	exited := make(chan error, 1)
	e.wait = func(cmd *exec.Cmd) error {
		started <- cmd.Process
		err := cmd.Wait()
		exited <- err
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, e.Launch(ctx, "geo:25.033963,121.564468"))
	cancel()

	var proc *os.Process
	select {
	case proc = <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("opener was not reaped in the background")
	}
	t.Cleanup(func() {
		_ = proc.Kill()
		<-exited
	})

	select {
	case err := <-exited:
		exited <- err
		t.Fatalf("opener ended when the context was cancelled: %v", err)
	case <-time.After(300 * time.Millisecond):
	}
	assert.True(t, e.Running())
}

func TestExecCancelledBeforeStart(t *testing.T) {
	e := NewExec(discardLogger(), "true")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, e.Launch(ctx, "geo:0,0"), context.Canceled)
	assert.Zero(t, e.Launched())
	assert.False(t, e.Running())
}

func TestExecDefaultsToXDGOpen(t *testing.T) {
	assert.Equal(t, DefaultOpener, NewExec(discardLogger(), "").command)
}

func TestEmptyURI(t *testing.T) {
	assert.ErrorIs(t, NewExec(discardLogger(), "true").Launch(context.Background(), ""), ErrEmptyURI)
	assert.ErrorIs(t, NewLog(discardLogger()).Launch(context.Background(), ""), ErrEmptyURI)
}

func TestLogLauncher(t *testing.T) {
	var buf bytes.Buffer
	l := NewLog(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, l.Launch(context.Background(), "geo:25.033963,121.564468"))
	assert.Contains(t, buf.String(), `"uri":"geo:25.033963,121.564468"`)
}
