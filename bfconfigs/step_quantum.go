package bfconfigs

import (
	"fmt"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

// StepQuantum is the number of steps run between pauses. Zero runs without pausing.
type StepQuantum int

var _ configs.Configurable = StepQuantum(0)

func (StepQuantum) ConfigExpr() string {
	return "step_quantum"
}

// nil when not given
var stepQuantumFlag = cmds.Var[*int]("-quantum")

// StepQuantum takes the flag if given, so -quantum 0 overrides a config file value.
func (Module) StepQuantum(
	loader configs.Loader,
) StepQuantum {
	if *stepQuantumFlag != nil {
		return StepQuantum(**stepQuantumFlag)
	}
	n, _ := configs.Lookup[int](loader, StepQuantum(0).ConfigExpr())
	return StepQuantum(n)
}

func (s StepQuantum) Validate() error {
	if s < 0 {
		return fmt.Errorf("step quantum must not be negative, got %d", s)
	}
	return nil
}
