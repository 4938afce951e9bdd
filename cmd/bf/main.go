package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/sessions"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var fileFlag = cmds.Var[string]("-file")

func main() {
	cmds.Execute(os.Args[1:])

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <path or url> is required")
		os.Exit(1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	if err := checkConfigs(scope); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var err error
	scope.Call(func(
		logger logs.Logger,
		load sources.Load,
		newSession sessions.NewSession,
		rawInput bfconfigs.RawInput,
	) {
		err = run(logger, load, newSession, rawInput)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// checkConfigs loads config files before anything reads values from them, so a bad file is reported instead of panicking.
func checkConfigs(scope dscope.Scope) (err error) {
	scope.Call(func(
		loader configs.Loader,
	) {
		if _, e := loader.Paths(); e != nil {
			err = fmt.Errorf("config: %w", e)
		}
	})
	return
}

func run(
	logger logs.Logger,
	load sources.Load,
	newSession sessions.NewSession,
	rawInput bfconfigs.RawInput,
) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	source, err := load(ctx, *fileFlag)
	if err != nil {
		return fmt.Errorf("load %s: %w", *fileFlag, err)
	}

	session, err := newSession(source)
	if err != nil {
		return err
	}

	if rawInput {
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("raw input: %w", err)
			}
			defer term.Restore(fd, state)
		} else {
			logger.Warn("stdin is not a terminal, raw input ignored")
		}
	}

	_, err = session.Run(ctx)
	return err
}
