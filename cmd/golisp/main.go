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

// Command golisp runs source files, or a REPL when given none, against
// the tree-walking Lisp evaluator in package eval.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dstern-lab/golisp"
	"github.com/dstern-lab/golisp/builtin"
	"github.com/dstern-lab/golisp/eval"
	"github.com/dstern-lab/golisp/reader"
	"github.com/dstern-lab/golisp/stdlib"
)

var gcLog bool

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.BoolVar(&gcLog, "gc-log", false, "log a debug line after a form whose collection lowered the live object count (shown with -v)")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	in := eval.New()
	builtin.Install(in)
	if res := stdlib.Load(in); golisp.IsError(res) {
		fmt.Fprintln(os.Stderr, res)
		os.Exit(1)
	}

	files := flag.Args()
	if len(files) == 0 {
		repl(in)
		return
	}

	failed := false
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "golisp: %s: %v\n", path, err)
			failed = true
			continue
		}
		if strings.HasSuffix(path, "_test.lisp") {
			if !runTestFile(in, path, string(src)) {
				failed = true
			}
			continue
		}
		if !runFile(in, path, string(src)) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// evalLogged evaluates one top-level form, logging the form and its
// result at Debug. When -gc-log is set it also logs a Debug line when the
// live object count after the form is below the count before it; a
// collection that leaves the count at or above that level is not logged.
func evalLogged(in *eval.Interp, form golisp.Value) golisp.Value {
	slog.Debug("eval form", "form", form)
	liveBefore, _ := in.Heap().Stats()
	res := in.EvalTopLevel(form)
	if gcLog {
		liveAfter, allocSinceGC := in.Heap().Stats()
		if liveAfter < liveBefore {
			slog.Debug("gc cycle", "freed", liveBefore-liveAfter, "live", liveAfter, "alloc_since_gc", allocSinceGC)
		}
	}
	if golisp.IsError(res) {
		slog.Debug("eval error", "error", res)
	} else {
		slog.Debug("eval result", "result", res)
	}
	return res
}

// runFile reads and evaluates every top-level form in src, printing each
// non-nil result and stopping at the first error.
func runFile(in *eval.Interp, path, src string) bool {
	forms := reader.ReadAllString(in.Heap(), src)
	for _, form := range forms {
		res := evalLogged(in, form)
		if golisp.IsError(res) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, res)
			return false
		}
		if !golisp.IsNil(res) {
			fmt.Println(res)
		}
	}
	return true
}

// runTestFile executes path in test mode: it binds a `deftest` form that
// counts boolean results and prints a pass/fail summary.
func runTestFile(in *eval.Interp, path, src string) bool {
	var passed, failed int
	in.Root().Bind("deftest", in.Heap().NewBuiltinMacro("deftest", func(i golisp.Interp, frame *golisp.Frame, args []golisp.Value) golisp.Value {
		if len(args) != 2 {
			return i.Heap().NewError("arity error: deftest expects exactly 2 arguments (name expr)")
		}
		name := args[0].String()
		res := i.Eval(frame, args[1])
		if golisp.IsError(res) {
			failed++
			slog.Error("test failed", "name", name, "error", res)
		} else if golisp.Truthy(res) {
			passed++
		} else {
			failed++
			slog.Warn("test failed", "name", name, "result", res)
		}
		return golisp.Nil()
	}))

	forms := reader.ReadAllString(in.Heap(), src)
	for _, form := range forms {
		res := evalLogged(in, form)
		if golisp.IsError(res) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, res)
			failed++
			break
		}
	}
	fmt.Printf("%s: %d passed, %d failed\n", path, passed, failed)
	return failed == 0
}

// repl implements the interactive loop: one line per prompt, `(exit)`
// terminates.
func repl(in *eval.Interp) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "(exit)" {
			return
		}
		forms := reader.ReadAllString(in.Heap(), line)
		for _, form := range forms {
			res := evalLogged(in, form)
			if golisp.IsError(res) {
				fmt.Fprintln(os.Stderr, res)
				continue
			}
			fmt.Println(res)
		}
	}
}
