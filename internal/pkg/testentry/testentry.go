package testentry

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/ssq-predictor/internal/app"
	"exusiai.dev/ssq-predictor/internal/app/appcontext"
)

// Populate boots the application graph and fills targets. env holds SSQ_* variables
// applied for the duration of the test; file logging is disabled unless env sets it.
func Populate(t *testing.T, env map[string]string, targets ...any) {
	t.Setenv("SSQ_LOG_DIR", "")
	for k, v := range env {
		t.Setenv(k, v)
	}

	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts := []fx.Option{fx.NopLogger}
	opts = append(opts, app.Options(appcontext.Declare(appcontext.EnvTest))...)
	opts = append(opts, fx.Populate(targets...))
	opts = append(opts, fx.Invoke(func() {
		log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
	}))

	a := fx.New(
		opts...,
	)

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("failed to start application: %v", err)
	}
	t.Cleanup(func() {
		_ = a.Stop(context.Background())
	})
}
