package main

import (
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

// repl reads statements from the terminal until exit, Ctrl-C, or Ctrl-D.
// History persists in the file at history.
func repl[T any](s *session[T], history string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	if f, err := os.Open(history); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			s.log.Printf("reading history: %v", err)
		}
		f.Close()
	}
	defer func() {
		f, err := os.Create(history)
		if err != nil {
			s.log.Printf("writing history: %v", err)
			return
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			s.log.Printf("writing history: %v", err)
		}
	}()
	for {
		in, err := line.Prompt("?: ")
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			s.printf("Exiting...\n")
			return nil
		default:
			return errors.Wrap(err, "reading input")
		}
		if in != "" {
			line.AppendHistory(in)
		}
		if !s.statement(in) {
			return nil
		}
	}
}
