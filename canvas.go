package gammas

import (
	"fmt"
)

type CommandKind uint8

const (
	TextCommand CommandKind = iota
	LineCommand
)

type Command struct {
	Kind           CommandKind
	X0, Y0, X1, Y1 int
	Color          Color
	Text           string
}

func (c Command) String() string {
	switch c.Kind {
	case TextCommand:
		return fmt.Sprintf("text(%d,%d %s %q)", c.X0, c.Y0, c.Color, c.Text)
	default:
		return fmt.Sprintf("line(%d,%d-%d,%d %s)", c.X0, c.Y0, c.X1, c.Y1, c.Color)
	}
}

// DisplayList is a Canvas that records the commands drawn on it.
type DisplayList struct {
	Commands []Command
}

var _ Canvas = (*DisplayList)(nil)

func (d *DisplayList) Text(x, y int, c Color, s string) {
	d.Commands = append(d.Commands, Command{Kind: TextCommand, X0: x, Y0: y, Color: c, Text: s})
}

func (d *DisplayList) Line(x0, y0, x1, y1 int, c Color) {
	d.Commands = append(d.Commands, Command{Kind: LineCommand, X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c})
}

func (d *DisplayList) filter(kind CommandKind) (ans []Command) {
	for _, c := range d.Commands {
		if c.Kind == kind {
			ans = append(ans, c)
		}
	}
	return
}

func (d *DisplayList) Lines() []Command { return d.filter(LineCommand) }
func (d *DisplayList) Texts() []Command { return d.filter(TextCommand) }

// Replay draws the recorded commands onto dst in order.
func (d *DisplayList) Replay(dst Canvas) {
	for _, c := range d.Commands {
		switch c.Kind {
		case TextCommand:
			dst.Text(c.X0, c.Y0, c.Color, c.Text)
		case LineCommand:
			dst.Line(c.X0, c.Y0, c.X1, c.Y1, c.Color)
		}
	}
}
