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

// Package golisp implements the value model, environment chain, and
// mark-and-sweep collector shared by the reader, evaluator, and builtin
// surface of a small Lisp dialect.
package golisp

import (
	"fmt"
	"io"
	"strconv"
)

// Kind tags the dynamic variant of a Value, as reported by the `type`
// builtin.
type Kind uint8

const (
	KindNumber Kind = iota
	KindSymbol
	KindKeyword
	KindString
	KindBool
	KindError
	KindNil
	KindCons
	KindCallable
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindKeyword:
		return "keyword"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindError:
		return "error"
	case KindNil:
		return "nil"
	case KindCons:
		return "cons"
	case KindCallable:
		return "callable"
	default:
		return "unknown"
	}
}

// Value is the interface every s-expression object implements.
type Value interface {
	fmt.Stringer

	// Kind reports the dynamic variant, as returned by the `type` builtin.
	Kind() Kind

	// IsNil reports whether this value is the empty list.
	IsNil() bool

	// IsAtom reports whether the value is not further decomposable.
	IsAtom() bool

	// Equal compares two values: byte/scalar equality for atoms,
	// structural equality for cons, identity for callables.
	Equal(Value) bool
}

// Printable is implemented by values with a representation distinct from
// Stringer (currently none differ, but Print is kept as the single entry
// point so future variants can diverge without touching call sites).
type Printable interface {
	Print(io.Writer) (int, error)
}

// Print writes obj's textual representation to w.
func Print(w io.Writer, obj Value) (int, error) {
	if obj == nil || obj.IsNil() {
		return io.WriteString(w, "nil")
	}
	if pr, ok := obj.(Printable); ok {
		return pr.Print(w)
	}
	return io.WriteString(w, obj.String())
}

// heapObject is implemented by every allocation constructed through a Heap,
// letting the collector flip its mark bit without a type switch.
type heapObject interface {
	setMark(bool)
	marked() bool
}

type header struct {
	mark bool
}

func (h *header) setMark(v bool) { h.mark = v }
func (h *header) marked() bool   { return h.mark }

// Number is a signed machine integer.
type Number struct {
	header
	Val int64
}

func (n *Number) Kind() Kind         { return KindNumber }
func (n *Number) IsNil() bool        { return false }
func (n *Number) IsAtom() bool       { return true }
func (n *Number) String() string     { return strconv.FormatInt(n.Val, 10) }
func (n *Number) Equal(o Value) bool { on, ok := o.(*Number); return ok && on.Val == n.Val }

// Truthy reports whether n counts as true: a number <= 0 is falsy.
func (n *Number) Truthy() bool { return n.Val > 0 }

// Str is an opaque byte sequence, printed without surrounding quotes to
// match the reader, which strips the quotes at read time.
type Str struct {
	header
	Bytes []byte
}

func (s *Str) Kind() Kind         { return KindString }
func (s *Str) IsNil() bool        { return false }
func (s *Str) IsAtom() bool       { return true }
func (s *Str) String() string     { return string(s.Bytes) }
func (s *Str) Equal(o Value) bool { os, ok := o.(*Str); return ok && string(os.Bytes) == string(s.Bytes) }

// Bool distinguishes true/false from numbers for printing purposes only.
type Bool struct {
	header
	Val bool
}

func (b *Bool) Kind() Kind   { return KindBool }
func (b *Bool) IsNil() bool  { return false }
func (b *Bool) IsAtom() bool { return true }
func (b *Bool) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}
func (b *Bool) Equal(o Value) bool { ob, ok := o.(*Bool); return ok && ob.Val == b.Val }

// ErrVal surfaces an interpreter error as an ordinary value: it terminates
// the top-level form it was produced in but is never a Go panic or a
// thrown exception.
type ErrVal struct {
	header
	Message string
}

func (e *ErrVal) Kind() Kind         { return KindError }
func (e *ErrVal) IsNil() bool        { return false }
func (e *ErrVal) IsAtom() bool       { return true }
func (e *ErrVal) String() string     { return e.Message }
func (e *ErrVal) Equal(o Value) bool { return e == o }

// IsError reports whether obj is an *ErrVal, the one non-nil falsy variant
// besides Bool(false) and Number <= 0.
func IsError(obj Value) bool { _, ok := obj.(*ErrVal); return ok }

// Truthy reports the interpreter's notion of truthiness: nil, false, an
// error, and a number <= 0 are falsy; everything else is truthy.
func Truthy(obj Value) bool {
	if IsNil(obj) {
		return false
	}
	switch v := obj.(type) {
	case *Bool:
		return v.Val
	case *ErrVal:
		return false
	case *Number:
		return v.Truthy()
	default:
		return true
	}
}

// IsNil reports whether obj is nil, tolerating a nil Go interface as well
// as a nil-valued Cons.
func IsNil(obj Value) bool { return obj == nil || obj.IsNil() }
