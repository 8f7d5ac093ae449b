// Package observability starts tracing, continuous profiling and the pprof
// listener for the API process.
package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

type stopFunc func(context.Context) error

type component struct {
	name string
	stop stopFunc
}

// Telemetry owns whatever Start switched on.
type Telemetry struct {
	logger     *logging.Logger
	components []component
}

// Start brings up uptrace, pyroscope and pprof as configured. Components that
// are disabled are skipped; if one fails, the ones already running are stopped.
func Start(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	starters := []struct {
		name  string
		start func(config.Config, *logging.Logger) (stopFunc, error)
	}{
		{"uptrace", startUptrace},
		{"pyroscope", startPyroscope},
		{"pprof", startPprof},
	}
	for _, s := range starters {
		stop, err := s.start(cfg, logger)
		if err != nil {
			_ = t.Shutdown(context.Background())
			return nil, fmt.Errorf("start %s: %w", s.name, err)
		}
		if stop != nil {
			t.components = append(t.components, component{name: s.name, stop: stop})
		}
	}
	return t, nil
}

// Shutdown stops components in reverse start order so spans emitted while
// the others stop are still exported.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var errs []error
	for i := len(t.components) - 1; i >= 0; i-- {
		c := t.components[i]
		if err := c.stop(ctx); err != nil {
			t.logger.Error("stop telemetry component", "component", c.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}
	t.components = nil
	return errors.Join(errs...)
}

// Enabled lists running components by name.
func (t *Telemetry) Enabled() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.components))
	for _, c := range t.components {
		names = append(names, c.name)
	}
	return names
}
