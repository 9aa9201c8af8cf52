package cli

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Input reads one integer per call. ok is false when the line could
// not be parsed; err is set only when reading itself failed.
type Input interface {
	ReadMove() (n int, ok bool, err error)
}

func NewConsoleInput(in *bufio.Reader) *ConsoleInput {
	return &ConsoleInput{in}
}

type ConsoleInput struct {
	in *bufio.Reader
}

func (c *ConsoleInput) ReadMove() (int, bool, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, false, err
	}
	n, e := strconv.Atoi(strings.TrimSpace(line))
	if e != nil {
		return 0, false, nil
	}
	return n, true, nil
}
