package observability

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWithEverythingDisabled(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "football-hub",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	tel, err := Start(cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Empty(t, tel.Enabled())
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestStartSkipsUptraceWithoutDSN(t *testing.T) {
	tel, err := Start(config.Config{UptraceEnabled: true, UptraceDSN: "  "}, nil)
	require.NoError(t, err)
	assert.Empty(t, tel.Enabled())
}

func TestStartPprof(t *testing.T) {
	tel, err := Start(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"pprof"}, tel.Enabled())
	require.NoError(t, tel.Shutdown(context.Background()))
	assert.Empty(t, tel.Enabled())
}

func TestStartFailsOnTakenPprofPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	_, err = Start(config.Config{PprofEnabled: true, PprofAddr: ln.Addr().String()}, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start pprof")
}

func TestShutdownJoinsErrorsInReverse(t *testing.T) {
	var order []string
	boom := errors.New("boom")
	tel := &Telemetry{
		logger: logging.NewNop(),
		components: []component{
			{name: "first", stop: func(context.Context) error { order = append(order, "first"); return nil }},
			{name: "second", stop: func(context.Context) error { order = append(order, "second"); return boom }},
		},
	}

	err := tel.Shutdown(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"second", "first"}, order)

	var nilTel *Telemetry
	assert.NoError(t, nilTel.Shutdown(context.Background()))
}
