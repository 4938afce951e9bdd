package debugs

import (
	"testing"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		runner := bfvm.NewRunner(8, "+", nil, nil)
		tap(t.Context(), "test", StateOf(runner))
	})
}
