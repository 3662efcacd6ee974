// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package desk

// PathChooser asks the user where to save the roster. ok is false when the
// user cancelled.
type PathChooser interface {
	ChooseSavePath() (path string, ok bool)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) bool
}

// StaticPath is a PathChooser for a path that was already collected, e.g.
// from a flag or a prompt that has closed. The empty path means cancelled.
type StaticPath string

// ChooseSavePath implements PathChooser.
func (p StaticPath) ChooseSavePath() (string, bool) {
	return string(p), p != ""
}

// Answer is a Confirmer for an answer that was already collected.
type Answer bool

// Confirm implements Confirmer.
func (a Answer) Confirm(string) bool {
	return bool(a)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(question string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(question string) bool {
	return f(question)
}
