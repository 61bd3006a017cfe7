// Package textbuf holds the typed text and the edit operations that mutate it.
package textbuf

import "fmt"

// OpKind enumerates the edit operations a confirmed key press can produce
type OpKind int

const (
	OpAppendChar OpKind = iota
	OpAppendSpace
	OpDeleteLast
	OpClear
)

// Op is a single buffer mutation. Char is only meaningful for OpAppendChar.
type Op struct {
	Kind OpKind
	Char rune
}

// AppendChar returns an operation appending c
func AppendChar(c rune) Op {
	return Op{Kind: OpAppendChar, Char: c}
}

// AppendSpace returns an operation appending a single space
func AppendSpace() Op {
	return Op{Kind: OpAppendSpace}
}

// DeleteLast returns an operation removing the final character
func DeleteLast() Op {
	return Op{Kind: OpDeleteLast}
}

// Clear returns an operation emptying the buffer
func Clear() Op {
	return Op{Kind: OpClear}
}

func (op Op) String() string {
	switch op.Kind {
	case OpAppendChar:
		return fmt.Sprintf("append(%q)", op.Char)
	case OpAppendSpace:
		return "append_space"
	case OpDeleteLast:
		return "delete_last"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Buffer is the text typed during a session.
// Every operation is total: deleting from an empty buffer is a no-op.
type Buffer struct {
	runes []rune
}

// NewBuffer creates an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Apply mutates the buffer according to op
func (b *Buffer) Apply(op Op) {
	switch op.Kind {
	case OpAppendChar:
		b.runes = append(b.runes, op.Char)
	case OpAppendSpace:
		b.runes = append(b.runes, ' ')
	case OpDeleteLast:
		if len(b.runes) > 0 {
			b.runes = b.runes[:len(b.runes)-1]
		}
	case OpClear:
		b.runes = b.runes[:0]
	}
}

// String returns a snapshot of the buffer contents
func (b *Buffer) String() string {
	return string(b.runes)
}

// Len returns the number of characters in the buffer
func (b *Buffer) Len() int {
	return len(b.runes)
}
