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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsPrintProperList(t *testing.T) {
	h := NewHeap()
	lst := h.NewList(h.NewNumber(1), h.NewNumber(2), h.NewNumber(3))
	assert.Equal(t, "(1 2 3)", lst.String())
}

func TestConsPrintImproperList(t *testing.T) {
	h := NewHeap()
	pair := h.NewCons(h.NewNumber(1), h.NewNumber(2))
	assert.Equal(t, "(1 . 2)", pair.String())
}

func TestConsPrintEmptyList(t *testing.T) {
	assert.Equal(t, "nil", Nil().String())
}

func TestElementsProperList(t *testing.T) {
	h := NewHeap()
	lst := h.NewList(h.NewNumber(1), h.NewNumber(2))
	elems, ok := Elements(lst)
	require.True(t, ok)
	require.Len(t, elems, 2)
	assert.Equal(t, int64(1), elems[0].(*Number).Val)
}

func TestElementsImproperList(t *testing.T) {
	h := NewHeap()
	improper := h.NewCons(h.NewNumber(1), h.NewNumber(2))
	_, ok := Elements(improper)
	assert.False(t, ok)
}

func TestListBuilderEmptyIsNil(t *testing.T) {
	h := NewHeap()
	assert.True(t, h.NewList().IsNil())
}

func TestLength(t *testing.T) {
	h := NewHeap()
	lst := h.NewList(h.NewNumber(1), h.NewNumber(2), h.NewNumber(3))
	assert.Equal(t, 3, Length(lst))
}

func TestConsEqualStructural(t *testing.T) {
	h := NewHeap()
	a := h.NewList(h.NewNumber(1), h.NewSymbol("x"))
	b := h.NewList(h.NewNumber(1), h.NewSymbol("x"))
	assert.True(t, a.Equal(b))
}
