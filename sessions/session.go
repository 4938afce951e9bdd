package sessions

import (
	"context"
	"fmt"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
)

// Session drives one runner to termination, pausing every quantum to check for cancellation and to run debug hooks.
type Session struct {
	Runner  *bfvm.Runner
	quantum bfconfigs.StepQuantum
	logger  logs.Logger
	newSpan logs.NewSpan
	watch   debugs.Watch
	exprs   WatchExprs
	tap     debugs.Tap
	tapOn   TapEnabled
}

type Result struct {
	Steps      uint64
	Terminated bool
}

type NewSession func(source string) (*Session, error)

func (Module) NewSession(
	maxTapeSize bfconfigs.MaxTapeSize,
	quantum bfconfigs.StepQuantum,
	input bfvm.Input,
	output bfvm.Output,
	logger logs.Logger,
	newSpan logs.NewSpan,
	watch debugs.Watch,
	exprs WatchExprs,
	tap debugs.Tap,
	tapOn TapEnabled,
) NewSession {
	return func(source string) (*Session, error) {
		if err := maxTapeSize.Validate(); err != nil {
			return nil, err
		}
		if err := quantum.Validate(); err != nil {
			return nil, err
		}
		return &Session{
			Runner:  bfvm.NewRunner(int(maxTapeSize), source, input, output),
			quantum: quantum,
			logger:  logger,
			newSpan: newSpan,
			watch:   watch,
			exprs:   exprs,
			tap:     tap,
			tapOn:   tapOn,
		}, nil
	}
}

const unboundedChunk = 1 << 20

// Run returns when the program terminates, fails, or ctx is done between quanta.
// Steps in the result is the runner's total.
func (s *Session) Run(ctx context.Context) (ret Result, err error) {
	ctx, _ = s.newSpan(ctx, "")
	s.logger.InfoContext(ctx, "run",
		"instructions", s.Runner.Program().Len(),
		"max_tape_size", s.Runner.Tape().MaxSize(),
		"quantum", s.quantum,
	)

	defer func() {
		ret.Steps = s.Runner.Steps()
		if err != nil {
			s.logger.ErrorContext(ctx, "run failed",
				"steps", ret.Steps,
				"pc", s.Runner.Program().PC(),
				"pointer", s.Runner.Tape().Pointer(),
				"error", err,
			)
			err = logs.WrapSpan(ctx, fmt.Errorf("ran %d steps, then failed: %w", ret.Steps, err))
			return
		}
		if ret.Terminated {
			s.logger.InfoContext(ctx, "program halted", "steps", ret.Steps)
		}
	}()

	// without a quantum, still stop every chunk to observe ctx
	chunk, observe := uint64(s.quantum), true
	if s.quantum == 0 {
		chunk, observe = unboundedChunk, false
	}

	for {
		select {
		case <-ctx.Done():
			return ret, ctx.Err()
		default:
		}

		res, err := s.Runner.RunFor(chunk)
		if err != nil {
			return ret, err
		}
		if observe {
			s.logger.DebugContext(ctx, "quantum",
				"steps", res.Steps,
				"total", s.Runner.Steps(),
			)
		}
		if observe || res.Terminated {
			if err := s.pause(ctx); err != nil {
				return ret, err
			}
		}
		if res.Terminated {
			ret.Terminated = true
			return ret, nil
		}
	}
}

func (s *Session) pause(ctx context.Context) error {
	if len(s.exprs) == 0 && !s.tapOn {
		return nil
	}
	state := debugs.StateOf(s.Runner)
	if _, err := s.watch(ctx, s.exprs, state); err != nil {
		return err
	}
	if s.tapOn {
		s.tap(ctx, fmt.Sprintf("step %d", state.Steps), state)
	}
	return nil
}
