package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/bf/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Watch evaluates Starlark expressions against a runner state and logs the results.
type Watch func(ctx context.Context, exprs []string, state State) ([]starlark.Value, error)

func (Module) Watch(
	logger logs.Logger,
) Watch {
	return func(ctx context.Context, exprs []string, state State) (ret []starlark.Value, err error) {
		if len(exprs) == 0 {
			return nil, nil
		}
		globals := state.globals()
		thread := &starlark.Thread{
			Name: "watch",
		}
		for _, expr := range exprs {
			value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "watch", expr, globals)
			if err != nil {
				return nil, fmt.Errorf("watch %q: %w", expr, err)
			}
			logger.InfoContext(ctx, "watch",
				"expr", expr,
				"value", value.String(),
				"steps", state.Steps,
			)
			ret = append(ret, value)
		}
		return ret, nil
	}
}
