package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const banner = `*****************************************************************
**************** Conway's Game of Life, in Go *******************
*****************************************************************

Before starting, please introduce some parameters
`

// Prompter asks for run parameters on a line-oriented console
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads answers from in and writes questions to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// askInt repeats the question until the answer parses and passes check
func (p *Prompter) askInt(question string, check func(int) error) (int, error) {
	for {
		fmt.Fprint(p.out, question)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, errors.Wrap(err, "[askInt] failed to read answer")
			}
			return 0, errors.Wrap(io.ErrUnexpectedEOF, "[askInt] input closed")
		}

		v, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		if err = check(v); err != nil {
			fmt.Fprintf(p.out, "Invalid value: %v\n", errors.Cause(err))
			continue
		}
		return v, nil
	}
}

// PromptRunConfig asks for every run parameter, re-prompting invalid answers
func (p *Prompter) PromptRunConfig() (RunConfig, error) {
	var (
		rc  RunConfig
		err error
	)
	fmt.Fprint(p.out, banner)

	if rc.Width, err = p.askInt(fmt.Sprintf("Grid width (less than or equal to %d): ", MaxDimension), ValidateWidth); err != nil {
		return rc, err
	}
	if rc.Height, err = p.askInt(fmt.Sprintf("Grid height (less than or equal to %d): ", MaxDimension), ValidateHeight); err != nil {
		return rc, err
	}

	area := rc.Width * rc.Height
	rc.StartAlive, err = p.askInt(
		fmt.Sprintf("Number of starting alive cells (less than or equal to %d): ", area),
		func(v int) error { return ValidateStartAlive(v, rc.Width, rc.Height) },
	)
	if err != nil {
		return rc, err
	}

	rc.MaxCycles, err = p.askInt(
		"Number of maximum cycles to run in-game (if 0, infinite until all cells are dead): ",
		ValidateMaxCycles,
	)
	if err != nil {
		return rc, err
	}

	fmt.Fprintf(p.out, "Good. You will have to click %d dead cells to make them alive. "+
		"The game starts once they are placed, and ends when the cycles you indicated are over or when all cells are dead.\n",
		rc.StartAlive)
	return rc, nil
}
