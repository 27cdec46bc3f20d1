package stub

import (
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/stub/api/handlers"
	"voice-api-smoke/internal/stub/store"
	"voice-api-smoke/internal/syncutils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newServeApp(t *testing.T) (*cli.App, *syncutils.SyncUtils) {
	t.Helper()
	logger := zerolog.Nop()
	cfg := &config.Config{
		API:    config.API{Username: "admin", Password: "admin"},
		Server: config.Server{ServerAddress: ":8080", IdleTimeout: time.Second, ReadTimeout: time.Second, WriteTimeout: time.Second},
	}
	sync := syncutils.NewSyncUtils()
	t.Cleanup(sync.SyncCancel)
	cmd := NewServeCommand(&logger, cfg, handlers.NewEndpointHandlers(cfg, &logger, store.NewStore()), sync)
	return &cli.App{Name: "voice-api-smoke", Commands: []*cli.Command{cmd.Describe()}, Writer: io.Discard}, sync
}

// runAsync starts the app and returns a channel with its result.
func runAsync(app *cli.App, args ...string) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- app.Run(append([]string{"voice-api-smoke", "stub:serve"}, args...))
	}()
	return done
}

func waitResult(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		require.FailNow(t, "stub:serve did not return")
		return nil
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestServe_ServesUntilCancelled(t *testing.T) {
	app, sync := newServeApp(t)
	port := freePort(t)

	done := runAsync(app, "--port", strconv.Itoa(port))

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/"
	assert.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	sync.SyncCancel()
	assert.NoError(t, waitResult(t, done))
}

func TestServe_PortZeroShutsDownCleanly(t *testing.T) {
	app, sync := newServeApp(t)

	done := runAsync(app, "--port", "0")
	time.Sleep(50 * time.Millisecond)
	sync.SyncCancel()

	assert.NoError(t, waitResult(t, done))
}

func TestServe_InvalidFaultFailsBeforeListening(t *testing.T) {
	app, _ := newServeApp(t)
	port := freePort(t)

	err := waitResult(t, runAsync(app, "--port", strconv.Itoa(port), "--fault", "explode"))

	assert.ErrorContains(t, err, "invalid fault mode")
	l, lerr := net.Listen("tcp", "127.0.0.1:"+strconv.Itoa(port))
	require.NoError(t, lerr, "port must not have been bound")
	_ = l.Close()
}

func TestServe_PortInUse(t *testing.T) {
	app, _ := newServeApp(t)
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	err = waitResult(t, runAsync(app, "--port", strconv.Itoa(port)))

	assert.ErrorContains(t, err, "address already in use")
}
