// Package glyph maps task statuses to the symbols the printers use.
package glyph

import (
	"fmt"

	"tableflip.dev/dayplan/pkg/task"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	underline  = 4
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underline, in, escape, resetCode)
}

var statusGlyphs = map[task.Status]Glyph{
	task.StatusOpen:       {Key: "+", Symbol: "●", Meaning: "task"},
	task.StatusInProgress: {Key: ">", Symbol: "➤", Meaning: "task in progress"},
	task.StatusDone:       {Key: "x", Symbol: "✘", Meaning: "task completed"},
	task.StatusSkipped:    {Key: "~", Symbol: "⦵", Meaning: "task skipped"},
}

// ForStatus returns the glyph for a task status. Unknown statuses get
// the open-task bullet.
func ForStatus(s task.Status) Glyph {
	if g, ok := statusGlyphs[s]; ok {
		return g
	}
	return statusGlyphs[task.StatusOpen]
}

func (g Glyph) String() string {
	return g.Symbol
}
