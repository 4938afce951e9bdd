package debugs

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

const windowRadius = 8

// State is a view of a runner between steps.
type State struct {
	Steps       uint64
	PC          int
	Pointer     int64
	Cell        byte
	WindowStart int64
	Window      []byte
	cellAt      func(int64) byte
}

func StateOf(runner *bfvm.Runner) State {
	tape := runner.Tape()
	pointer := tape.Pointer()
	return State{
		Steps:       runner.Steps(),
		PC:          runner.Program().PC(),
		Pointer:     pointer,
		Cell:        tape.Read(),
		WindowStart: pointer - windowRadius,
		Window:      tape.Window(pointer-windowRadius, pointer+windowRadius+1),
		cellAt:      tape.Cell,
	}
}

func (s State) globals() starlark.StringDict {
	cells := make([]starlark.Value, 0, len(s.Window))
	for _, b := range s.Window {
		cells = append(cells, starlark.MakeInt(int(b)))
	}
	ret := starlark.StringDict{
		"steps":        starlark.MakeUint64(s.Steps),
		"pc":           starlark.MakeInt(s.PC),
		"pointer":      starlark.MakeInt64(s.Pointer),
		"cell":         starlark.MakeInt(int(s.Cell)),
		"window_start": starlark.MakeInt64(s.WindowStart),
		"cells":        starlark.NewList(cells),
	}
	if s.cellAt != nil {
		cellAt := s.cellAt
		ret["cell_at"] = starlarkutil.MakeFunc("cell_at", func(pos int64) int {
			return int(cellAt(pos))
		})
	}
	for _, v := range ret {
		v.Freeze()
	}
	return ret
}
