/*
File    : monkeylite/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"monkeylite/ast"
	"monkeylite/environment"
	"monkeylite/object"
	"monkeylite/token"
)

func TestFunction_Inspect(t *testing.T) {
	fn := &Function{
		Parameters: []*ast.Identifier{
			{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"},
		},
		Body: &ast.BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []ast.Statement{
				&ast.ExpressionStatement{
					Token:      token.Token{Type: token.IDENT, Literal: "x"},
					Expression: &ast.Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"},
				},
			},
		},
		Env: environment.New(),
	}

	assert.Equal(t, object.FUNCTION_OBJ, fn.Type())
	assert.Equal(t, "fn(x) {\nx\n}", fn.Inspect())
}

func TestFunction_EnvIsSharedPointer(t *testing.T) {
	env := environment.New()
	env.Set("captured", &object.Integer{Value: 1})

	fn := &Function{Env: env}

	env.Set("captured", &object.Integer{Value: 2})

	val, ok := fn.Env.Get("captured")
	assert.True(t, ok)
	assert.Equal(t, &object.Integer{Value: 2}, val, "function must observe mutation through the shared environment pointer")
}
