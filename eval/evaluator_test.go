/*
File    : monkeylite/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"monkeylite/environment"
	"monkeylite/function"
	"monkeylite/lexer"
	"monkeylite/object"
	"monkeylite/parser"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parser errors on %q: %v", input, p.Errors())
	}
	env := environment.New()
	return Eval(program, env)
}

func testIntegerObject(t *testing.T, obj object.Object, expected int64) {
	t.Helper()
	result, ok := obj.(*object.Integer)
	if !ok {
		t.Fatalf("object is not Integer. got=%T (%+v)", obj, obj)
	}
	if result.Value != expected {
		t.Errorf("object has wrong value. got=%d, want=%d", result.Value, expected)
	}
}

func testBooleanObject(t *testing.T, obj object.Object, expected bool) {
	t.Helper()
	result, ok := obj.(*object.Boolean)
	if !ok {
		t.Fatalf("object is not Boolean. got=%T (%+v)", obj, obj)
	}
	if result.Value != expected {
		t.Errorf("object has wrong value. got=%t, want=%t", result.Value, expected)
	}
}

func testNullObject(t *testing.T, obj object.Object) {
	t.Helper()
	if obj != NULL {
		t.Errorf("object is not NULL. got=%T (%+v)", obj, obj)
	}
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		testIntegerObject(t, evaluated, tt.expected)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		testBooleanObject(t, evaluated, tt.expected)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", true},
		{"!!true", true},
		{"!!false", false},
		{"!!5", false},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		testBooleanObject(t, evaluated, tt.expected)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", nil},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if want, ok := tt.expected.(int64); ok {
			testIntegerObject(t, evaluated, want)
		} else {
			testNullObject(t, evaluated)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{
			`
if (10 > 1) {
  if (10 > 1) {
    return 10;
  }
  return 1;
}
`,
			10,
		},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		testIntegerObject(t, evaluated, tt.expected)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input           string
		expectedMessage string
	}{
		{"5 + true;", "type mismatch: INTEGER_OBJ BOOLEAN_OBJ"},
		{"5 + true; 5;", "type mismatch: INTEGER_OBJ BOOLEAN_OBJ"},
		{"-true", "unknown operator: - BOOLEAN_OBJ"},
		{"true + false;", "unknown operator: BOOLEAN_OBJ + BOOLEAN_OBJ"},
		{"5; true + false; 5", "unknown operator: BOOLEAN_OBJ + BOOLEAN_OBJ"},
		{"if (10 > 1) { true + false; }", "unknown operator: BOOLEAN_OBJ + BOOLEAN_OBJ"},
		{
			`
if (10 > 1) {
  if (10 > 1) {
    return true + false;
  }
  return 1;
}
`,
			"unknown operator: BOOLEAN_OBJ + BOOLEAN_OBJ",
		},
		{"foobar", "identifier not found: foobar"},
		{`"hello" - "world"`, "unknown operator: STRING - STRING"},
		{"5 / 0", "division by zero"},
		{"fn(x) { x; }(1, 2);", "wrong number of arguments: expected 1, got 2"},
		{"5 == true", "type mismatch: INTEGER_OBJ BOOLEAN_OBJ"},
		{"true == true", "unknown operator: BOOLEAN_OBJ == BOOLEAN_OBJ"},
		{"true != false", "unknown operator: BOOLEAN_OBJ != BOOLEAN_OBJ"},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		errObj, ok := evaluated.(*object.Error)
		if !ok {
			t.Fatalf("no error object returned for %q. got=%T (%+v)", tt.input, evaluated, evaluated)
		}
		if errObj.Message != tt.expectedMessage {
			t.Errorf("wrong error message for %q. expected=%q, got=%q", tt.input, tt.expectedMessage, errObj.Message)
		}
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		testIntegerObject(t, evaluated, tt.expected)
	}
}

func TestFunctionObject(t *testing.T) {
	evaluated := testEval(t, "fn(x) { x + 2; };")
	fn, ok := evaluated.(*function.Function)
	if !ok {
		t.Fatalf("object is not Function. got=%T (%+v)", evaluated, evaluated)
	}
	if len(fn.Parameters) != 1 {
		t.Fatalf("function has wrong parameters. got=%+v", fn.Parameters)
	}
	if fn.Parameters[0].String() != "x" {
		t.Fatalf("parameter is not 'x'. got=%q", fn.Parameters[0].String())
	}
	if fn.Body.String() != "(x + 2)" {
		t.Fatalf("body is not (x + 2). got=%q", fn.Body.String())
	}
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		testIntegerObject(t, evaluated, tt.expected)
	}
}

func TestClosures(t *testing.T) {
	input := `
let newAdder = fn(x) {
  fn(y) { x + y };
};
let addTwo = newAdder(2);
addTwo(2);
`
	testIntegerObject(t, testEval(t, input), 4)
}

func TestClosures_CaptureIsSharedNotCopied(t *testing.T) {
	input := `
let counter = fn() {
  let count = 0;
  let read = fn() { count; };
  let count = 5;
  read;
};
let readCount = counter();
readCount();
`
	testIntegerObject(t, testEval(t, input), 5)
}

func TestStringLiteral(t *testing.T) {
	evaluated := testEval(t, `"Hello World!"`)
	str, ok := evaluated.(*object.String)
	if !ok {
		t.Fatalf("object is not String. got=%T (%+v)", evaluated, evaluated)
	}
	if str.Value != "Hello World!" {
		t.Errorf("String has wrong value. got=%q", str.Value)
	}
}

func TestStringConcatenation(t *testing.T) {
	evaluated := testEval(t, `"Hello" + " " + "World!"`)
	str, ok := evaluated.(*object.String)
	if !ok {
		t.Fatalf("object is not String. got=%T (%+v)", evaluated, evaluated)
	}
	if str.Value != "Hello World!" {
		t.Errorf("String has wrong value. got=%q", str.Value)
	}
}

func TestRun_EvaluatesSource(t *testing.T) {
	env := environment.New()
	result := Run("let a = 5; a + 10;", env)
	testIntegerObject(t, result, 15)
}

func TestRun_PersistsBindingsAcrossCalls(t *testing.T) {
	env := environment.New()
	Run("let a = 5;", env)
	result := Run("a * 2;", env)
	testIntegerObject(t, result, 10)
}

func TestRun_ParseErrorProducesErrorObject(t *testing.T) {
	env := environment.New()
	result := Run("let = 5;", env)
	errObj, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected *object.Error for parse failure, got=%T (%+v)", result, result)
	}
	if errObj.Message == "" {
		t.Errorf("expected a non-empty parse error message")
	}
}

func TestRun_EvalErrorProducesErrorObject(t *testing.T) {
	env := environment.New()
	result := Run("foobar;", env)
	errObj, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected *object.Error, got=%T (%+v)", result, result)
	}
	if errObj.Message != "identifier not found: foobar" {
		t.Errorf("wrong error message. got=%q", errObj.Message)
	}
}
