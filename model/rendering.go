package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer renders to out, or to stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out}
}

// Display renders a snapshot with the highest row on top
func (r *TerminalRenderer) Display(s Snapshot) error {
	w := bufio.NewWriter(r.out)
	for y := s.Height() - 1; y >= 0; y-- {
		for x := 0; x < s.Width(); x++ {
			if s.Alive(x, y) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out, "Error clearing terminal:", err)
	}
}
