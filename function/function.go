/*
File    : monkeylite/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function implements the monkeylite function value: an
// anonymous parameter list and body plus the environment it closed over
// at the point it was defined.
package function

import (
	"bytes"

	"monkeylite/ast"
	"monkeylite/environment"
	"monkeylite/object"
)

// Function is the runtime value produced by evaluating a FunctionLiteral.
// Env is the exact environment active at definition time, held by
// pointer: a later call reopens that same scope rather than a snapshot
// of it, which is what makes closures observe outer-variable mutations.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *environment.Environment
}

func (f *Function) Type() object.Type { return object.FUNCTION_OBJ }

func (f *Function) Inspect() string {
	var buf bytes.Buffer

	buf.WriteString("fn(")
	for i, p := range f.Parameters {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.String())
	}
	buf.WriteString(") {\n")
	buf.WriteString(f.Body.String())
	buf.WriteString("\n}")
	return buf.String()
}
