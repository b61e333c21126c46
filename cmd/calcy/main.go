package main

import (
	"io"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zephyrtronium/calcy"
	"github.com/zephyrtronium/calcy/decimal"
)

// version is set at link time.
var version = "dev"

// datatypes lists the values of --datatype.
var datatypes = []string{"usize", "u8", "u16", "u32", "f32", "f64", "decimal", "bigfloat"}

type options struct {
	file        string
	vars        string
	datatype    string
	prec        uint
	interactive bool
	benchmark   bool
	exact       bool
	echo        bool
	verbose     bool
}

func main() {
	log.SetFlags(0)
	status := 0
	cmd := newRootCmd(&status)
	if err := cmd.Execute(); err != nil {
		log.Print(err)
		if status == 0 {
			status = 1
		}
	}
	os.Exit(status)
}

func newRootCmd(status *int) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "calcy [equations...]",
		Short:         "Evaluate simple algebraic equations fast, that's it!",
		Long: `Evaluate simple algebraic equations fast, that's it!

Each result is kept in the variable "ans". Names longer than one letter are
quoted, so use it as "ans", e.g. "ans"*2. Assign with name=expr and list
variables with vars.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options{
				file:        v.GetString("file"),
				vars:        v.GetString("vars"),
				datatype:    v.GetString("datatype"),
				prec:        v.GetUint("prec"),
				interactive: v.GetBool("interactive"),
				benchmark:   v.GetBool("benchmark"),
				exact:       v.GetBool("exact"),
				echo:        v.GetBool("echo"),
				verbose:     v.GetBool("verbose"),
			}
			code, err := run(opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
			*status = code
			return err
		},
	}
	f := cmd.Flags()
	f.StringP("file", "f", "", "evaluate a file line by line")
	f.String("vars", "", "YAML file of name: value variable definitions")
	f.StringP("datatype", "d", "f64", "evaluate expressions with a specific datatype ("+strings.Join(datatypes, ", ")+")")
	f.UintP("prec", "p", 64, "precision of bigfloat calculations in bits")
	f.BoolP("interactive", "i", false, "interactive mode (REPL for algebra)")
	f.BoolP("benchmark", "b", false, "print evaluation times of each equation")
	f.BoolP("exact", "e", false, "evaluate expressions with an exact (decimal) datatype, alias for '--datatype decimal'")
	f.Bool("echo", false, "print parse trees")
	f.BoolP("verbose", "v", false, "log debug information to stderr")
	if err := v.BindPFlags(f); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("calcy")
	v.AutomaticEnv()
	return cmd
}

// run selects the numeric type and runs everything with it. The result is
// the process exit status.
func run(opts options, args []string, stdout, stderr io.Writer) (int, error) {
	logger := log.New(io.Discard, "calcy: ", 0)
	if opts.verbose {
		logger.SetOutput(stderr)
	}
	if opts.file == "" && len(args) == 0 {
		opts.interactive = true
	}
	if opts.exact {
		opts.datatype = "decimal"
	}
	logger.Printf("using datatype %s", opts.datatype)
	switch opts.datatype {
	case "usize":
		return start[uint](calcy.Unsigned[uint]{}, opts, args, stdout, stderr, logger)
	case "u8":
		return start[uint8](calcy.Unsigned[uint8]{}, opts, args, stdout, stderr, logger)
	case "u16":
		return start[uint16](calcy.Unsigned[uint16]{}, opts, args, stdout, stderr, logger)
	case "u32":
		return start[uint32](calcy.Unsigned[uint32]{}, opts, args, stdout, stderr, logger)
	case "f32":
		return start[float32](calcy.Float[float32]{}, opts, args, stdout, stderr, logger)
	case "f64":
		return start[float64](calcy.Float[float64]{}, opts, args, stdout, stderr, logger)
	case "decimal":
		return start[decimal.Decimal](calcy.Decimal{}, opts, args, stdout, stderr, logger)
	case "bigfloat":
		return start[*big.Float](calcy.BigFloat{Prec: opts.prec}, opts, args, stdout, stderr, logger)
	default:
		return 2, errors.Errorf("unknown datatype %q (want one of %s)", opts.datatype, strings.Join(datatypes, ", "))
	}
}

// start runs the file, then the equations, then the REPL, with one domain.
func start[T any](d calcy.Domain[T], opts options, args []string, stdout, stderr io.Writer, logger *log.Logger) (int, error) {
	s := newSession(d, stdout, stderr, logger)
	s.benchmark = opts.benchmark
	s.echo = opts.echo
	if opts.vars != "" {
		if err := s.loadVars(opts.vars); err != nil {
			return 1, err
		}
	}
	if opts.file != "" {
		logger.Printf("reading from file %s", opts.file)
		f, err := os.Open(opts.file)
		if err != nil {
			return 1, errors.Wrap(err, "could not read from file")
		}
		more, err := s.readFrom(f)
		f.Close()
		if err != nil {
			return 1, errors.Wrapf(err, "reading %s", opts.file)
		}
		if !more {
			return s.status, nil
		}
	}
	for _, e := range args {
		if !s.statement(e) {
			return s.status, nil
		}
	}
	if opts.interactive {
		s.printf("Calcy (v%s), have fun!\n", version)
		history := filepath.Join(os.TempDir(), "calcy-history.txt")
		// An interactive session always ends successfully.
		return 0, repl(s, history)
	}
	return s.status, nil
}
