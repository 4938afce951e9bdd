package bfconfigs

import (
	"fmt"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

// MaxTapeSize is the maximum number of allocated tape cells.
type MaxTapeSize int

var _ configs.Configurable = MaxTapeSize(0)

func (MaxTapeSize) ConfigExpr() string {
	return "max_tape_size"
}

const DefaultMaxTapeSize = 1 << 29

// nil when not given
var maxTapeSizeFlag = cmds.Var[*int]("-max-tape-size")

// MaxTapeSize takes the flag if given, then the config file, then the default.
// An explicit zero is kept and rejected by Validate.
func (Module) MaxTapeSize(
	loader configs.Loader,
) MaxTapeSize {
	if *maxTapeSizeFlag != nil {
		return MaxTapeSize(**maxTapeSizeFlag)
	}
	if n, ok := configs.Lookup[int](loader, MaxTapeSize(0).ConfigExpr()); ok {
		return MaxTapeSize(n)
	}
	return DefaultMaxTapeSize
}

func (m MaxTapeSize) Validate() error {
	if m < 1 {
		return fmt.Errorf("max tape size must be positive, got %d", m)
	}
	return nil
}
