// Package prompt collects single-line answers from the user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input ends before any answer was given.
var ErrNoInput = errors.New("no input received")

// Prompter asks one question and blocks until an answer line is available.
type Prompter interface {
	Ask(question string) (string, error)
}

// Line prompts on w and reads answers from r, one line per question.
type Line struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLine returns a Line prompter over r and w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{reader: bufio.NewReader(r), w: w}
}

// Ask writes the question and returns the trimmed answer. A final line
// without a trailing newline is accepted; an empty stream yields ErrNoInput.
func (l *Line) Ask(question string) (string, error) {
	fmt.Fprintf(l.w, "%s ", question)

	line, err := l.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(l.w)
		return "", ErrNoInput
	}
	return strings.TrimSpace(line), nil
}

// Scripted answers questions from a fixed list and records what was asked.
type Scripted struct {
	Answers []string
	Asked   []string
	Err     error
}

// Ask returns the next scripted answer, Err once set, or ErrNoInput when
// the script is exhausted.
func (s *Scripted) Ask(question string) (string, error) {
	s.Asked = append(s.Asked, question)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Answers) == 0 {
		return "", ErrNoInput
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
