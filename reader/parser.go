//-----------------------------------------------------------------------------
// Copyright (c) 2026-present golisp authors
//
// This file is part of golisp.
//
// golisp is licensed under the MIT License. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package reader

import (
	"strconv"
	"strings"

	"github.com/dstern-lab/golisp"
)

// Reader parses a stream of source text into a sequence of golisp values,
// allocating every value through the given heap so the collector sees it.
type Reader struct {
	heap *golisp.Heap
	lex  *lexer
}

// New creates a Reader over src.
func New(heap *golisp.Heap, src []byte) *Reader {
	return &Reader{heap: heap, lex: newLexer(src)}
}

// NewFromString creates a Reader over a string.
func NewFromString(heap *golisp.Heap, src string) *Reader {
	return New(heap, []byte(src))
}

// ReadForm reads one top-level form. ok is false only at true end of
// input (no more tokens at all); a malformed form still yields a form
// (an *golisp.ErrVal) with ok true — a missing closing paren produces an
// error value, not a thrown exception.
func (r *Reader) ReadForm() (val golisp.Value, ok bool) {
	tok, err := r.lex.Next()
	if err != nil {
		return r.heap.NewError(err.Error()), true
	}
	if tok.Kind == TokEOF {
		return nil, false
	}
	return r.parseFrom(tok), true
}

// ReadAll reads every form in the source.
func (r *Reader) ReadAll() []golisp.Value {
	var out []golisp.Value
	for {
		v, ok := r.ReadForm()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// parseFrom parses one expr given its already-lexed leading token.
func (r *Reader) parseFrom(tok Token) golisp.Value {
	switch tok.Kind {
	case TokQuote:
		return r.wrap("quote", tok)
	case TokBacktick:
		return r.wrap("quasiquote", tok)
	case TokComma:
		return r.wrap("unquote", tok)
	case TokLParen:
		return r.parseList()
	case TokRParen:
		return r.heap.NewError("syntax error: unexpected ')'")
	case TokNumber:
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return r.heap.NewError("syntax error: invalid number " + tok.Text)
		}
		return r.heap.NewNumber(n)
	case TokString:
		return r.heap.NewString([]byte(tok.Text))
	case TokSymbol:
		if strings.HasPrefix(tok.Text, ":") {
			return r.heap.NewKeyword(tok.Text)
		}
		return r.heap.NewSymbol(tok.Text)
	default:
		return r.heap.NewError("syntax error: unexpected end of input")
	}
}

// wrap reads the following expr and conses it behind the given head
// symbol, implementing the quote/quasiquote/unquote shorthands.
func (r *Reader) wrap(head string, _ Token) golisp.Value {
	next, err := r.lex.Next()
	if err != nil {
		return r.heap.NewError(err.Error())
	}
	if next.Kind == TokEOF {
		return r.heap.NewError("syntax error: expected expression after '" + head + "' shorthand")
	}
	inner := r.parseFrom(next)
	return r.heap.NewList(r.heap.NewSymbol(head), inner)
}

func (r *Reader) parseList() golisp.Value {
	var elems []golisp.Value
	for {
		tok, err := r.lex.Next()
		if err != nil {
			return r.heap.NewError(err.Error())
		}
		if tok.Kind == TokRParen {
			return r.heap.NewList(elems...)
		}
		if tok.Kind == TokEOF {
			return r.heap.NewError("syntax error: missing closing ')'")
		}
		elems = append(elems, r.parseFrom(tok))
	}
}

// ReadAllString is a convenience wrapper for reading every top-level form
// out of a complete source string.
func ReadAllString(heap *golisp.Heap, src string) []golisp.Value {
	return NewFromString(heap, src).ReadAll()
}
