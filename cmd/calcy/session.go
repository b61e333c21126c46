package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/calcy"
)

// session holds the state shared by every statement of one run.
type session[T any] struct {
	d    calcy.Domain[T]
	vars map[string]T

	out  io.Writer
	errs io.Writer
	log  *log.Logger

	benchmark bool
	echo      bool
	// status is the exit status. It becomes 1 after any failed statement.
	status int
}

func newSession[T any](d calcy.Domain[T], out, errs io.Writer, logger *log.Logger) *session[T] {
	return &session[T]{
		d:    d,
		vars: make(map[string]T),
		out:  out,
		errs: errs,
		log:  logger,
	}
}

func (s *session[T]) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *session[T]) fail(err error) {
	fmt.Fprintf(s.errs, "error: %v\n", err)
	s.status = 1
}

// statement runs one line of input. It returns false if processing should
// stop.
func (s *session[T]) statement(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return true
	case strings.EqualFold(line, "exit"):
		s.printf("Exiting...\n")
		return false
	case strings.EqualFold(line, "vars"):
		s.printVars()
		return true
	}
	if name, expr, ok := strings.Cut(line, "="); ok {
		s.assign(strings.TrimSpace(name), expr)
		return true
	}
	s.eval(line)
	return true
}

func (s *session[T]) printVars() {
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		s.printf("%s = %s\n", k, s.d.Format(s.vars[k]))
	}
}

func (s *session[T]) assign(name, expr string) {
	name, err := varName(name)
	if err != nil {
		s.fail(err)
		return
	}
	v, err := calcy.Solve(s.d, expr, s.vars)
	if err != nil {
		s.fail(errors.Wrapf(err, "assigning %s", name))
		return
	}
	s.log.Printf("%s = %s", name, s.d.Format(v))
	s.vars[name] = v
}

func (s *session[T]) eval(expr string) {
	start := time.Now()
	toks, err := calcy.Tokenize(s.d, expr)
	if err != nil {
		s.fail(err)
		return
	}
	s.log.Printf("tokens: %v", toks)
	e, err := calcy.BuildTree(toks)
	if err != nil {
		s.fail(err)
		return
	}
	s.log.Printf("tree: %v", e)
	if s.echo {
		s.printf("%v\n", e)
	}
	r, err := e.Eval(s.d, s.vars)
	if err != nil {
		s.fail(err)
		return
	}
	took := time.Since(start)
	s.vars["ans"] = r
	if s.benchmark {
		s.printf("%s (took %dµs)\n", s.d.Format(r), took.Microseconds())
		return
	}
	s.printf("%s\n", s.d.Format(r))
}

// readFrom runs each line of r as a statement. It returns false if a
// statement asked to stop.
func (s *session[T]) readFrom(r io.Reader) (bool, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !s.statement(sc.Text()) {
			return false, nil
		}
	}
	return true, sc.Err()
}

// varName validates the left side of an assignment. Names are a single
// letter or a quoted run of letters, digits, and underscores, the same as
// names in expressions.
func varName(name string) (string, error) {
	if r := []rune(name); len(r) == 1 && unicode.IsLetter(r[0]) {
		return name, nil
	}
	if len(name) > 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
		in := name[1 : len(name)-1]
		ok := true
		for _, r := range in {
			if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				ok = false
				break
			}
		}
		if ok {
			return in, nil
		}
	}
	return "", errors.Errorf("invalid variable name %q", name)
}
