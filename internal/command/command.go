// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     command
// Description: Command contract and the per-session context handed to
//              every command
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/pkg/core/logging"
)

// MaxLineLength is the longest input line ReadLine accepts, in bytes
const MaxLineLength = 1 << 20

// Command is a named action the shell can dispatch to
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, s *Session, args []string) error
}

// Session carries the state shared by all commands of one shell run
type Session struct {
	ID      string
	History *calculator.History
	Logger  *logging.Logger

	in  *bufio.Reader
	out io.Writer
}

// NewSession creates a session reading lines from in and writing to out
func NewSession(id string, in io.Reader, out io.Writer, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewDiscardLogger("session")
	}
	return &Session{
		ID:      id,
		History: calculator.NewHistory(),
		Logger:  logger,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Out returns the writer for user-facing output
func (s *Session) Out() io.Writer {
	return s.out
}

// ReadLine writes prompt and returns the next input line without its line
// terminator. It returns io.EOF when the input is exhausted. A line longer
// than MaxLineLength is consumed and reported with IsLineTooLong; the next
// call continues with the following line.
func (s *Session) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}

	var (
		line    []byte
		readAny bool
		tooLong bool
	)
	for {
		chunk, err := s.in.ReadSlice('\n')
		readAny = readAny || len(chunk) > 0

		if !tooLong {
			content := len(line) + len(chunk)
			if err == nil {
				content--
			}
			if content > MaxLineLength {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !(errors.Is(err, io.EOF) && readAny) {
			return "", err
		}
		break
	}

	if tooLong {
		return "", mcerrors.LineTooLong(MaxLineLength)
	}
	return strings.TrimRight(strings.TrimSuffix(string(line), "\n"), "\r"), nil
}

// IsLineTooLong reports whether err was returned by ReadLine for an
// over-long input line
func IsLineTooLong(err error) bool {
	var e *mcerror.Error
	return errors.As(err, &e) && e.Code() == mcerror.CodeInvalidInput && e.Operation() == "read"
}

// Printf writes formatted output
func (s *Session) Printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// Println writes its arguments followed by a newline
func (s *Session) Println(args ...interface{}) {
	fmt.Fprintln(s.out, args...)
}

// Calculator returns a calculator recording into the session history
func (s *Session) Calculator() *calculator.Calculator {
	return calculator.New(s.History, s.Logger)
}

// described overrides the description of a wrapped command
type described struct {
	Command
	description string
}

// WithDescription returns cmd with its description replaced. An empty
// description returns cmd unchanged.
func WithDescription(cmd Command, description string) Command {
	if strings.TrimSpace(description) == "" {
		return cmd
	}
	return &described{Command: cmd, description: description}
}

func (d *described) Description() string {
	return d.description
}
