/*
File    : lox/parser/helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/lox/token"

// parseError is the sentinel panic value used to unwind out of a
// broken declaration back to Parser.declaration's recover, which then
// resynchronizes. It carries no payload: the diagnostic has already
// been sent to the Reporter by errorAt at the point of failure.
type parseError struct{}

// match advances past the current token and returns true if it is one
// of the given kinds; otherwise the cursor is left unmoved.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token has the given kind, without
// consuming it.
func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.END_OF_FILE
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past the current token if it has the expected kind,
// or reports message and aborts the current declaration otherwise.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports a parse error attributed to tok and returns the
// parseError sentinel for the caller to panic with.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	if p.report != nil {
		p.report.ErrorAt(tok.Line, tok.Lexeme, tok.Kind == token.END_OF_FILE, message)
	}
	return parseError{}
}

// synchronize discards tokens until it reaches a likely statement
// boundary: just past a ';', or just before a keyword that starts a
// new statement. This bounds the blast radius of one syntax error to
// the single broken declaration.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}

		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}
