package bfvm

import "fmt"

// Tape is a byte tape growing in both directions from the origin.
// Non-negative positions index right directly, negative position p indexes left at -p-1.
// Cells are only ever appended, never freed.
type Tape struct {
	left    []byte
	right   []byte
	pointer int64
	maxSize int
}

func NewTape(maxSize int) *Tape {
	if maxSize < 1 {
		panic(fmt.Errorf("max tape size must be positive, got %d", maxSize))
	}
	return &Tape{
		right:   []byte{0},
		maxSize: maxSize,
	}
}

func (t *Tape) cell() *byte {
	if t.pointer < 0 {
		return &t.left[-t.pointer-1]
	}
	return &t.right[t.pointer]
}

func (t *Tape) Read() byte {
	return *t.cell()
}

func (t *Tape) Write(b byte) {
	*t.cell() = b
}

func (t *Tape) Increment() {
	*t.cell()++
}

func (t *Tape) Decrement() {
	*t.cell()--
}

func (t *Tape) MoveLeft() error {
	next := t.pointer - 1
	if next < 0 && int64(len(t.left)) <= -next-1 {
		if !t.canGrow() {
			return sizeExceeded("left", t.maxSize)
		}
		t.left = append(t.left, 0)
	}
	t.pointer = next
	return nil
}

func (t *Tape) MoveRight() error {
	next := t.pointer + 1
	if next >= 0 && int64(len(t.right)) <= next {
		if !t.canGrow() {
			return sizeExceeded("right", t.maxSize)
		}
		t.right = append(t.right, 0)
	}
	t.pointer = next
	return nil
}

func (t *Tape) canGrow() bool {
	return len(t.left)+len(t.right)+1 <= t.maxSize
}

func (t *Tape) Pointer() int64 {
	return t.pointer
}

// Len returns the number of allocated cells.
func (t *Tape) Len() int {
	return len(t.left) + len(t.right)
}

func (t *Tape) MaxSize() int {
	return t.maxSize
}

// Cell returns the value at pos without allocating; unvisited cells read 0.
func (t *Tape) Cell(pos int64) byte {
	if pos < 0 {
		if i := -pos - 1; i < int64(len(t.left)) {
			return t.left[i]
		}
		return 0
	}
	if pos < int64(len(t.right)) {
		return t.right[pos]
	}
	return 0
}

// Window returns the cells in [from, to).
func (t *Tape) Window(from, to int64) []byte {
	if to <= from {
		return nil
	}
	ret := make([]byte, 0, to-from)
	for pos := from; pos < to; pos++ {
		ret = append(ret, t.Cell(pos))
	}
	return ret
}
