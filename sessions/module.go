package sessions

import (
	"bufio"
	"io"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	BFConfigs bfconfigs.Module
	Debugs    debugs.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Input buffers stdin, except when the tap REPL shares it: then bytes are read one at a time so REPL lines are not consumed.
func (Module) Input(
	stdin Stdin,
	tapOn TapEnabled,
) bfvm.Input {
	if tapOn {
		return bfvm.ReaderInput(stdin)
	}
	return bfvm.ReaderInput(bufio.NewReader(stdin))
}

func (Module) Output() bfvm.Output {
	return bfvm.WriterOutput(os.Stdout)
}

type WatchExprs []string

var watchFlag = cmds.Collect[string]("-watch")

func (Module) WatchExprs() WatchExprs {
	return WatchExprs(*watchFlag)
}

// TapEnabled opens a REPL between quanta.
type TapEnabled bool

var tapFlag = cmds.Switch("-tap")

func (Module) TapEnabled() TapEnabled {
	return TapEnabled(*tapFlag)
}
