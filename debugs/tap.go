package debugs

import (
	"context"

	"github.com/reusee/bf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin with the runner state as globals. It returns when the REPL reads EOF.
type Tap func(ctx context.Context, what string, state State)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, state State) {
		logger.InfoContext(ctx, "tap: "+what,
			"steps", state.Steps,
			"pc", state.PC,
			"pointer", state.Pointer,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, state.globals())
	}
}
