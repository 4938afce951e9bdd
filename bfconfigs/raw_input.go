package bfconfigs

import (
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

// RawInput puts a terminal stdin into raw mode so input is read per keystroke.
type RawInput bool

var _ configs.Configurable = RawInput(false)

func (RawInput) ConfigExpr() string {
	return "raw_input"
}

var rawInputFlag = cmds.Switch("-raw-input")

func (Module) RawInput(
	loader configs.Loader,
) RawInput {
	return RawInput(*rawInputFlag || configs.First[bool](loader, RawInput(false).ConfigExpr()))
}
