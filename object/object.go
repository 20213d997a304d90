/*
File    : monkeylite/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime value model produced by evaluation:
// a small closed set of types, each identified by a Type tag and able to
// render itself for REPL/Inspect output.
package object

import "fmt"

// Type tags every runtime value. These match the evaluator's dispatch
// and the REPL's Inspect output one-for-one.
type Type string

const (
	INTEGER_OBJ      Type = "INTEGER_OBJ"
	BOOLEAN_OBJ      Type = "BOOLEAN_OBJ"
	STRING_OBJ       Type = "STRING"
	NULL_OBJ         Type = "NULL"
	RETURN_VALUE_OBJ Type = "RETURN_VALUE_OBJ"
	ERROR_OBJ        Type = "ERROR"
	FUNCTION_OBJ     Type = "FUNCTION"
)

// Object is implemented by every runtime value.
type Object interface {
	Type() Type
	Inspect() string
}

// Integer wraps a signed 64-bit value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean wraps true/false. The evaluator reuses two singleton instances
// rather than allocating one per literal.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// String wraps a scanned (unescaped) string literal.
type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

// Null is the sole "no value" result, e.g. of an if with no matching
// branch. Like Boolean, the evaluator reuses one singleton instance.
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// ReturnValue wraps the operand of a return statement so Eval can
// recognize it and unwind enclosing blocks without evaluating further
// statements. It never escapes to the top level of a program.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error carries a plain diagnostic message. Like ReturnValue it short
// circuits evaluation: once produced it propagates up through every
// enclosing construct untouched.
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "Error: " + e.Message }

// Inspect renders any Object as text, the shared helper behind the REPL
// echo and error-reporting paths.
func Inspect(obj Object) string {
	if obj == nil {
		return ""
	}
	return obj.Inspect()
}
