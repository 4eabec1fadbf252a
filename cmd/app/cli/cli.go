package cli

import (
	"context"

	"go.uber.org/fx"

	"exusiai.dev/ssq-predictor/internal/app"
	"exusiai.dev/ssq-predictor/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}

// DepsFn builds the application graph lazily, only once a command actually runs.
func DepsFn[T any]() func() (T, error) {
	return func() (T, error) {
		var deps T
		err := Start(fx.Populate(&deps))
		return deps, err
	}
}
