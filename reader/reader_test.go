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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstern-lab/golisp"
)

func TestReadNumber(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, "42")
	require.Len(t, forms, 1)
	n, ok := forms[0].(*golisp.Number)
	require.True(t, ok)
	assert.Equal(t, int64(42), n.Val)
}

func TestReadNegativeNumberVsSymbol(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, "-5 -foo")
	require.Len(t, forms, 2)
	_, isNum := forms[0].(*golisp.Number)
	assert.True(t, isNum)
	sym, isSym := forms[1].(*golisp.Symbol)
	require.True(t, isSym)
	assert.Equal(t, "-foo", sym.Name)
}

func TestReadString(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, `"hello world"`)
	require.Len(t, forms, 1)
	s, ok := forms[0].(*golisp.Str)
	require.True(t, ok)
	assert.Equal(t, "hello world", string(s.Bytes))
}

func TestReadKeyword(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, ":foo")
	require.Len(t, forms, 1)
	kw, ok := forms[0].(*golisp.Keyword)
	require.True(t, ok)
	assert.Equal(t, ":foo", kw.Name)
}

func TestReadProperList(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, "(1 2 3)")
	require.Len(t, forms, 1)
	assert.Equal(t, "(1 2 3)", forms[0].String())
}

func TestReadQuoteShorthand(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, "'x")
	require.Len(t, forms, 1)
	assert.Equal(t, "(quote x)", forms[0].String())
}

func TestReadQuasiquoteAndUnquoteShorthand(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, "`(a ,b)")
	require.Len(t, forms, 1)
	assert.Equal(t, "(quasiquote (a (unquote b)))", forms[0].String())
}

func TestReadLineComment(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, "; a comment\n42")
	require.Len(t, forms, 1)
	assert.Equal(t, "42", forms[0].String())
}

func TestReadMissingClosingParenYieldsErrorValue(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, "(1 2")
	require.Len(t, forms, 1)
	assert.True(t, golisp.IsError(forms[0]))
}

func TestReadUnterminatedStringYieldsErrorValue(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, `"abc`)
	require.Len(t, forms, 1)
	assert.True(t, golisp.IsError(forms[0]))
}

// TestReadPrintRoundtrip checks the §8 law for numbers, symbols, and
// proper cons lists. Strings are deliberately excluded: the printer omits
// surrounding quotes (§4.A), so a printed string re-lexes as a bare
// symbol rather than round-tripping to a Str (the "bounded by printer
// format" caveat in §8's statement of the law).
func TestReadPrintRoundtrip(t *testing.T) {
	h := golisp.NewHeap()
	forms := ReadAllString(h, "(1 2 (3 4) sym)")
	require.Len(t, forms, 1)
	again := ReadAllString(h, forms[0].String())
	require.Len(t, again, 1)
	assert.True(t, forms[0].Equal(again[0]))
}
