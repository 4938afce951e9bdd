package bfvm

type Instruction uint8

const (
	MoveLeft Instruction = iota + 1
	MoveRight
	Increment
	Decrement
	OutputByte
	InputByte
	BeginLoop
	EndLoop
)

func ParseInstruction(r rune) (Instruction, bool) {
	switch r {
	case '<':
		return MoveLeft, true
	case '>':
		return MoveRight, true
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '.':
		return OutputByte, true
	case ',':
		return InputByte, true
	case '[':
		return BeginLoop, true
	case ']':
		return EndLoop, true
	}
	return 0, false
}

func (i Instruction) String() string {
	switch i {
	case MoveLeft:
		return "<"
	case MoveRight:
		return ">"
	case Increment:
		return "+"
	case Decrement:
		return "-"
	case OutputByte:
		return "."
	case InputByte:
		return ","
	case BeginLoop:
		return "["
	case EndLoop:
		return "]"
	}
	return "?"
}

// IsLoopMarker reports whether the instruction only affects control flow.
func (i Instruction) IsLoopMarker() bool {
	return i == BeginLoop || i == EndLoop
}
