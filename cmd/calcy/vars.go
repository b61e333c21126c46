package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calcy"
)

// loadVars reads a YAML mapping of variable names to expressions. Each value
// is solved in order against the variables defined before it.
func (s *session[T]) loadVars(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "could not read variables")
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return errors.Errorf("%s: variables must be a mapping", path)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return errors.Errorf("%s:%d: value of %s must be a scalar", path, v.Line, k.Value)
		}
		x, err := calcy.Solve(s.d, v.Value, s.vars)
		if err != nil {
			return errors.Wrapf(err, "%s:%d: %s", path, v.Line, k.Value)
		}
		s.log.Printf("%s = %s", k.Value, s.d.Format(x))
		s.vars[k.Value] = x
	}
	return nil
}
