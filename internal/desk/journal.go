// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package desk

import (
	"fmt"
	"io"
	"strings"
)

// Journal receives the user-visible log lines.
type Journal interface {
	Append(line string)
}

// Log keeps lines in memory for the window's log area. Only the most recent
// Max lines are kept when Max is positive.
type Log struct {
	Max   int
	lines []string
}

// Append implements Journal.
func (l *Log) Append(line string) {
	l.lines = append(l.lines, line)
	if l.Max > 0 && len(l.lines) > l.Max {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-l.Max:]...)
	}
}

// Lines returns a copy of the kept lines, oldest first.
func (l *Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns the newest line, or "".
func (l *Log) Last() string {
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}

// String joins the kept lines with newlines.
func (l *Log) String() string {
	return strings.Join(l.lines, "\n")
}

// WriterJournal prints each line to W, e.g. stdout for the CLI.
type WriterJournal struct {
	W io.Writer
}

// Append implements Journal.
func (w WriterJournal) Append(line string) {
	_, _ = fmt.Fprintln(w.W, line)
}

type discardJournal struct{}

func (discardJournal) Append(string) {}
