package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/oddeven"
	"github.com/exascience/oddeven/list"
	"github.com/exascience/oddeven/sort"
)

const (
	sourceGenerate = "g"
	sourceInput    = "i"

	implBarrier    = "barrier"
	implForkJoin   = "forkjoin"
	implSequential = "sequential"
)

type config struct {
	size     int
	source   string
	threads  int
	impl     string
	limit    int
	seed     int64
	repeat   int
	print    bool
	logLevel string
}

// applyArgs overrides the flag values with the positional form
// <n> <g|i> <threads>, of which any prefix may be given.
func (c *config) applyArgs(args []string) error {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("list length %q: %w", args[0], err)
		}
		c.size = n
	}
	if len(args) > 1 {
		c.source = args[1]
	}
	if len(args) > 2 {
		t, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("thread count %q: %w", args[2], err)
		}
		c.threads = t
	}
	return nil
}

func (c *config) validate() error {
	if err := oddeven.CheckDimensions(c.size, c.threads); err != nil {
		return err
	}
	switch c.source {
	case sourceGenerate, sourceInput:
	default:
		return fmt.Errorf("unknown list source %q, want %q or %q", c.source, sourceGenerate, sourceInput)
	}
	switch c.impl {
	case implBarrier, implForkJoin, implSequential:
	default:
		return fmt.Errorf("unknown implementation %q", c.impl)
	}
	if c.limit <= 0 {
		return fmt.Errorf("key bound %v must be positive", c.limit)
	}
	if c.repeat < 1 {
		return fmt.Errorf("repeat count %v must be at least 1", c.repeat)
	}
	return nil
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := config{
		source:   sourceGenerate,
		threads:  oddeven.DefaultThreads(),
		impl:     implBarrier,
		limit:    list.DefaultMax,
		repeat:   1,
		print:    true,
		logLevel: zerolog.LevelInfoValue,
	}
	cmd := &cobra.Command{
		Use:   "oddeven <n> <g|i> <threads>",
		Short: "Sort a list with a parallel odd-even transposition sort",
		Long: `Sort a list of n integers with a parallel odd-even transposition sort.

The list is either generated (source g) from a seeded random number
generator, or read from standard input (source i) as whitespace-separated
integers. The positional arguments may be replaced by the --size, --source
and --threads flags.`,
		Args:          cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.applyArgs(args); err != nil {
				return err
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			level, err := zerolog.ParseLevel(cfg.logLevel)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
				Level(level).
				With().Timestamp().Logger()
			return run(cfg, stdin, stdout, logger)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVarP(&cfg.size, "size", "n", cfg.size, "number of elements in the list")
	flags.StringVarP(&cfg.source, "source", "s", cfg.source, "g to generate the list, i to read it from standard input")
	flags.IntVarP(&cfg.threads, "threads", "t", cfg.threads, "number of worker threads")
	flags.StringVar(&cfg.impl, "impl", cfg.impl, "sort implementation: barrier, forkjoin or sequential")
	flags.IntVar(&cfg.limit, "max", cfg.limit, "exclusive upper bound for generated keys")
	flags.Int64Var(&cfg.seed, "seed", cfg.seed, "seed for generated lists")
	flags.IntVar(&cfg.repeat, "repeat", cfg.repeat, "number of timed runs")
	flags.BoolVar(&cfg.print, "print", cfg.print, "print the list before and after sorting")
	flags.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "log level: trace, debug, info, warn, error")
	return cmd
}

func sorter(cfg config, logger zerolog.Logger) func([]int) error {
	switch cfg.impl {
	case implForkJoin:
		return func(a []int) error { return sort.ForkJoin(sort.IntSlice(a), cfg.threads) }
	case implSequential:
		return func(a []int) error { return sort.Sequential(sort.IntSlice(a)) }
	default:
		s := sort.New(cfg.threads, sort.WithLogger(logger))
		return func(a []int) error { return s.Sort(sort.IntSlice(a)) }
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	var input []int
	if cfg.source == sourceGenerate {
		input = list.Generate(cfg.size, cfg.limit, cfg.seed)
		if cfg.print {
			if err := list.Print(stdout, "Before sort", input); err != nil {
				return err
			}
		}
	} else {
		var err error
		if input, err = list.Read(stdin, cfg.size); err != nil {
			return err
		}
	}

	sortList := sorter(cfg, logger)
	a := make([]int, len(input))
	seconds := make([]float64, 0, cfg.repeat)
	for r := 0; r < cfg.repeat; r++ {
		copy(a, input)
		start := time.Now()
		if err := sortList(a); err != nil {
			return err
		}
		elapsed := time.Since(start)
		seconds = append(seconds, elapsed.Seconds())
		logger.Info().
			Str("impl", cfg.impl).
			Int("n", cfg.size).
			Int("threads", cfg.threads).
			Int("run", r).
			Dur("elapsed", elapsed).
			Msg("list sorted")
		if r == 0 && cfg.print {
			if err := list.Print(stdout, "After sort", a); err != nil {
				return err
			}
		}
		if !sort.IntsAreSorted(a) {
			return fmt.Errorf("run %v: result is not sorted", r)
		}
	}

	for _, s := range seconds {
		if _, err := fmt.Fprintf(stdout, "\nTime: %fs\n", s); err != nil {
			return err
		}
	}
	if len(seconds) > 1 {
		mean, stddev := stat.MeanStdDev(seconds, nil)
		_, err := fmt.Fprintf(stdout, "\nRuns: %d, min: %fs, mean: %fs, stddev: %fs\n",
			len(seconds), floats.Min(seconds), mean, stddev)
		return err
	}
	return nil
}
