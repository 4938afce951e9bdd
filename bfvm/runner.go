package bfvm

import "fmt"

type Runner struct {
	tape       *Tape
	program    *Program
	steps      uint64
	nextHalt   uint64
	haltIsSet  bool
	terminated bool
	input      Input
	output     Output
}

func NewRunner(maxTapeSize int, source string, input Input, output Output) *Runner {
	return &Runner{
		tape:    NewTape(maxTapeSize),
		program: Parse(source),
		input:   input,
		output:  output,
	}
}

// RunResult is the outcome of Run and RunFor.
// Steps counts the steps executed by that call only.
type RunResult struct {
	Steps      uint64
	Terminated bool
}

func (r *Runner) Tape() *Tape {
	return r.tape
}

func (r *Runner) Program() *Program {
	return r.program
}

// Steps returns the total number of steps executed by this runner.
func (r *Runner) Steps() uint64 {
	return r.steps
}

func (r *Runner) Terminated() bool {
	return r.terminated
}

// Step decodes and applies one instruction.
// Terminated is absorbing: once the program counter passed the end, every call reports it again.
func (r *Runner) Step() (inst Instruction, terminated bool, err error) {
	inst, terminated, err = r.program.Decode(r.tape.Read())
	if err != nil {
		return 0, false, err
	}
	if terminated {
		r.terminated = true
		return 0, true, nil
	}

	switch inst {
	case MoveLeft:
		err = r.tape.MoveLeft()
	case MoveRight:
		err = r.tape.MoveRight()
	case Increment:
		r.tape.Increment()
	case Decrement:
		r.tape.Decrement()
	case OutputByte:
		if e := r.output(r.tape.Read()); e != nil {
			err = fmt.Errorf("output: %w", e)
		}
	case InputByte:
		b, e := r.input()
		if e != nil {
			err = fmt.Errorf("input: %w", e)
		} else {
			r.tape.Write(b)
		}
	}
	if err != nil {
		return 0, false, err
	}

	r.steps++
	return inst, false, nil
}

// Run steps until the program terminates, a step fails, or the threshold set by RunFor is reached.
// On failure, the returned result counts the steps completed in this call before the failing one.
func (r *Runner) Run() (ret RunResult, err error) {
	for {
		if r.haltIsSet && r.steps >= r.nextHalt {
			return ret, nil
		}
		_, terminated, err := r.Step()
		if err != nil {
			return ret, err
		}
		if terminated {
			ret.Terminated = true
			return ret, nil
		}
		ret.Steps++
	}
}

// RunFor runs at most steps steps. Program and tape state persist between calls,
// so repeated calls resume where the previous one paused.
func (r *Runner) RunFor(steps uint64) (RunResult, error) {
	r.nextHalt = r.steps + steps
	r.haltIsSet = true
	defer func() {
		r.haltIsSet = false
	}()
	return r.Run()
}
