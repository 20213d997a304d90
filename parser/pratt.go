/*
File    : monkeylite/parser/pratt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"monkeylite/ast"
	"monkeylite/token"
)

// Precedence levels, lowest to highest. A higher number binds tighter.
const (
	LOWEST int = iota
	EQUALS      // == !=
	LESSGREATER // > <
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // fn(x)
)

var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NEQ:      EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// peekPrecedence and currPrecedence look up the binding power of the
// upcoming and current token respectively, defaulting to LOWEST for
// tokens with no registered infix meaning (e.g. `;`, `)`, EOF).
func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) currPrecedence() int {
	if pr, ok := precedences[p.currToken.Type]; ok {
		return pr
	}
	return LOWEST
}
