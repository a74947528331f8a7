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

package golisp

import (
	"io"
	"strings"
)

// Cons is a pair of car and cdr, the only composite value. The nil list is
// represented by a nil *Cons pointer so that it needs no heap registration
// of its own: only objects that are actually allocated are registered.
type Cons struct {
	header
	Car Value
	Cdr Value
}

// Nil returns the empty list.
func Nil() *Cons { return nil }

func (c *Cons) Kind() Kind   { return KindCons }
func (c *Cons) IsNil() bool  { return c == nil }
func (c *Cons) IsAtom() bool { return c == nil }

// Equal performs a recursive structural comparison of car and cdr.
func (c *Cons) Equal(o Value) bool {
	if c == o {
		return true
	}
	if c.IsNil() {
		return IsNil(o)
	}
	oc, ok := o.(*Cons)
	if !ok || oc.IsNil() {
		return false
	}
	return c.Car.Equal(oc.Car) && c.Cdr.Equal(oc.Cdr)
}

func (c *Cons) String() string {
	var sb strings.Builder
	_, _ = c.Print(&sb)
	return sb.String()
}

// Print renders the list, switching to dot notation for an improper tail.
func (c *Cons) Print(w io.Writer) (int, error) {
	if c == nil {
		return io.WriteString(w, "nil")
	}
	total, err := io.WriteString(w, "(")
	if err != nil {
		return total, err
	}
	for node := c; ; {
		n, err := Print(w, node.Car)
		total += n
		if err != nil {
			return total, err
		}
		switch cdr := node.Cdr.(type) {
		case *Cons:
			if cdr == nil {
				n, err = io.WriteString(w, ")")
				total += n
				return total, err
			}
			n, err = io.WriteString(w, " ")
			total += n
			if err != nil {
				return total, err
			}
			node = cdr
		default:
			n, err = io.WriteString(w, " . ")
			total += n
			if err != nil {
				return total, err
			}
			n, err = Print(w, node.Cdr)
			total += n
			if err != nil {
				return total, err
			}
			n, err = io.WriteString(w, ")")
			total += n
			return total, err
		}
	}
}

// GetCons returns obj as a *Cons (possibly nil), if obj has cons kind.
func GetCons(obj Value) (*Cons, bool) {
	if obj == nil {
		return nil, true
	}
	c, ok := obj.(*Cons)
	return c, ok
}

// Length returns the number of elements in the proper-list prefix of obj.
func Length(obj Value) int {
	n := 0
	for {
		c, ok := GetCons(obj)
		if !ok || c.IsNil() {
			return n
		}
		n++
		obj = c.Cdr
	}
}

// Elements collects the elements of a proper list into a slice. The bool
// result is false if obj is improper.
func Elements(obj Value) ([]Value, bool) {
	var out []Value
	for {
		if IsNil(obj) {
			return out, true
		}
		c, ok := obj.(*Cons)
		if !ok {
			return out, false
		}
		out = append(out, c.Car)
		obj = c.Cdr
	}
}

// ListBuilder accumulates elements and produces a proper list without
// repeated O(n) appends; Heap.NewList, which the reader uses for every
// list it parses, is built on it.
type ListBuilder struct {
	heap       *Heap
	head, tail *Cons
}

// Add appends val to the list under construction.
func (lb *ListBuilder) Add(val Value) {
	cell := lb.heap.NewCons(val, Nil())
	if lb.tail == nil {
		lb.head = cell
	} else {
		lb.tail.Cdr = cell
	}
	lb.tail = cell
}

// List returns the built list.
func (lb *ListBuilder) List() *Cons { return lb.head }
