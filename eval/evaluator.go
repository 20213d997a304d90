/*
File    : monkeylite/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks an ast.Program and produces object.Object values.
// Eval is a single recursive-descent dispatcher: each node type is
// evaluated in terms of its children, with object.Error and
// object.ReturnValue acting as sentinels that short-circuit the
// surrounding statements instead of panicking.
package eval

import (
	"fmt"

	"monkeylite/ast"
	"monkeylite/environment"
	"monkeylite/function"
	"monkeylite/lexer"
	"monkeylite/object"
	"monkeylite/parser"
)

// Run lexes and parses source, then evaluates the resulting program
// against env. A parse error is reported as a single *object.Error
// joining every message the parser collected, so callers have one
// object.Object result to branch on regardless of where a run fails.
func Run(source string, env *environment.Environment) object.Object {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		msg := errs[0]
		for _, e := range errs[1:] {
			msg += "; " + e
		}
		return newError("%s", msg)
	}

	return Eval(program, env)
}

// Shared singletons: booleans and null carry no state, so every
// evaluation of `true`, `false`, or the absence of a value reuses the
// same instance instead of allocating one.
var (
	NULL  = &object.Null{}
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

// Eval evaluates node in env and returns the resulting value. Errors are
// represented as *object.Error rather than a Go error return: this keeps
// the dispatcher a single pure function and lets an Error flow through
// exactly like any other value until something checks for it explicitly.
func Eval(node ast.Node, env *environment.Environment) object.Object {
	switch node := node.(type) {

	case *ast.Program:
		return evalProgram(node, env)

	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)

	case *ast.BlockStatement:
		return evalBlockStatement(node, env)

	case *ast.LetStatement:
		val := Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return val

	case *ast.ReturnStatement:
		if node.ReturnValue == nil {
			return &object.ReturnValue{Value: NULL}
		}
		val := Eval(node.ReturnValue, env)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.Boolean:
		return nativeBoolToBooleanObject(node.Value)

	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)

	case *ast.IfExpression:
		return evalIfExpression(node, env)

	case *ast.FunctionLiteral:
		return &function.Function{Parameters: node.Parameters, Body: node.Body, Env: env}

	case *ast.CallExpression:
		fn := Eval(node.Function, env)
		if isError(fn) {
			return fn
		}
		args := evalExpressions(node.Arguments, env)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		return applyFunction(fn, args)
	}

	return nil
}

// evalProgram evaluates each top-level statement in turn and returns the
// value of the last one. A ReturnValue unwraps to its payload here (a
// bare `return` at the top level simply ends the program with that
// value); an Error stops evaluation of the remaining statements
// immediately, exactly as it does inside a block.
func evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}
	return result
}

// evalBlockStatement evaluates the statements of an if-branch or
// function body. Unlike evalProgram it does NOT unwrap a ReturnValue: it
// must keep propagating upward unchanged so the enclosing function call
// (which may be several blocks up, e.g. nested inside an if) is the one
// that unwraps it.
func evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}
	return result
}

func evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return newError("identifier not found: %s", node.Value)
}

func evalExpressions(exps []ast.Expression, env *environment.Environment) []object.Object {
	var result []object.Object

	for _, e := range exps {
		evaluated := Eval(e, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

// applyFunction checks arity, binds the call's arguments into a new
// scope enclosing the function's defining environment, evaluates the
// body there, and unwraps a ReturnValue so it does not keep propagating
// past the call that produced it.
func applyFunction(fn object.Object, args []object.Object) object.Object {
	function, ok := fn.(*function.Function)
	if !ok {
		return newError("not a function: %s", fn.Type())
	}

	if len(args) != len(function.Parameters) {
		return newError("wrong number of arguments: expected %d, got %d", len(function.Parameters), len(args))
	}

	extendedEnv := environment.NewEnclosed(function.Env)
	for i, param := range function.Parameters {
		extendedEnv.Set(param.Value, args[i])
	}

	evaluated := Eval(function.Body, extendedEnv)
	return unwrapReturnValue(evaluated)
}

func unwrapReturnValue(obj object.Object) object.Object {
	if rv, ok := obj.(*object.ReturnValue); ok {
		return rv.Value
	}
	return obj
}

func evalIfExpression(ie *ast.IfExpression, env *environment.Environment) object.Object {
	condition := Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return Eval(ie.Alternative, env)
	}
	return NULL
}

// isTruthy treats only the literal boolean true as truthy. Every other
// value — integers, strings, functions, null — is falsy. This is
// stricter than most scripting languages but is this language's defined
// behavior.
func isTruthy(obj object.Object) bool {
	switch obj {
	case TRUE:
		return true
	case FALSE:
		return false
	case NULL:
		return false
	default:
		return false
	}
}

func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}
