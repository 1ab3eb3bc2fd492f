// Command biglist inspects the biglist configuration and stress-tests the
// segment layout against a slice-backed model.
package main

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	"github.com/hupe1980/biglist"
	"github.com/hupe1980/biglist/testutil"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

func run(out, errOut io.Writer, args []string) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}
	switch args[0] {
	case "config":
		return cmdConfig(out, errOut, args[1:])
	case "stress":
		return cmdStress(out, errOut, args[1:])
	case "-h", "--help", "help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "error: unknown command %q\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: biglist <command> [flags]

Commands:
  config   Print the active configuration (or a config file with --file)
  stress   Replay a seeded random workload and report the segment layout
`)
}

func cmdConfig(out, errOut io.Writer, args []string) int {
	flagSet := flag.NewFlagSet("config", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	file := flagSet.String("file", "", "HuJSON config file to validate and print instead of the active configuration")
	asJSON := flagSet.Bool("json", false, "Print JSON")

	if err := flagSet.Parse(args); err != nil {
		return flagError(out, errOut, flagSet, err)
	}

	cfg := biglist.ActiveConfig()
	source := "environment"
	if *file != "" {
		var err error
		cfg, err = biglist.LoadConfigFile(*file)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}
		source = *file
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(out, "source:                       %s\n", source)
	fmt.Fprintf(out, "policy:                       %s\n", cfg.Policy)
	fmt.Fprintf(out, "default max segment capacity: %s\n", humanize.Comma(int64(cfg.DefaultMaxSegmentCapacity)))
	return 0
}

// flagError prints the flag defaults for --help and the parse error otherwise.
func flagError(out, errOut io.Writer, flagSet *flag.FlagSet, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(out, "Usage: biglist %s [flags]\n\n", flagSet.Name())
		flagSet.SetOutput(out)
		flagSet.PrintDefaults()
		return 0
	}
	fmt.Fprintln(errOut, "error:", err)
	return 2
}

type stressOptions struct {
	ops         int
	seed        int64
	maxSegment  int
	policy      biglist.Policy
	memoryLimit int64
	verifyEvery int
}

func parseStressFlags(out, errOut io.Writer, args []string) (stressOptions, int) {
	flagSet := flag.NewFlagSet("stress", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	ops := flagSet.IntP("ops", "n", 100_000, "Number of operations")
	seed := flagSet.Int64("seed", 1, "Random seed")
	maxSegment := flagSet.Int("max-segment", 256, "Maximum segment capacity")
	policy := flagSet.String("policy", "consistent", "Edge-case policy (consistent or legacy)")
	memory := flagSet.String("memory-limit", "", "Memory budget for segment buffers, e.g. 64MiB")
	verifyEvery := flagSet.Int("verify-every", 1000, "Compare against the model every N operations (0 = only at the end)")

	if err := flagSet.Parse(args); err != nil {
		if code := flagError(out, errOut, flagSet, err); code != 0 {
			return stressOptions{}, code
		}
		return stressOptions{}, -1
	}

	opts := stressOptions{
		ops:         *ops,
		seed:        *seed,
		maxSegment:  *maxSegment,
		verifyEvery: *verifyEvery,
	}
	if opts.ops < 0 || opts.verifyEvery < 0 {
		fmt.Fprintln(errOut, "error: --ops and --verify-every must be non-negative")
		return stressOptions{}, 2
	}

	p, ok := biglist.ParsePolicy(*policy)
	if !ok {
		fmt.Fprintln(errOut, "error: invalid --policy:", *policy)
		return stressOptions{}, 2
	}
	opts.policy = p

	if flagSet.Changed("memory-limit") {
		n, err := humanize.ParseBytes(*memory)
		if err != nil || n > uint64(1<<62) {
			fmt.Fprintln(errOut, "error: invalid --memory-limit:", *memory)
			return stressOptions{}, 2
		}
		opts.memoryLimit = int64(n)
	}
	return opts, 0
}

func cmdStress(out, errOut io.Writer, args []string) int {
	opts, code := parseStressFlags(out, errOut, args)
	if code != 0 {
		return max(code, 0)
	}

	listOpts := []biglist.Option{
		biglist.WithPolicy(opts.policy),
		biglist.WithMaxSegmentCapacity(opts.maxSegment),
	}
	if opts.memoryLimit > 0 {
		listOpts = append(listOpts, biglist.WithMemoryLimit(opts.memoryLimit))
	}
	metrics := &biglist.BasicMetricsCollector{}
	listOpts = append(listOpts, biglist.WithMetricsCollector(metrics))

	l, err := biglist.NewOrdered[int64](listOpts...)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	began := time.Now()
	refused, err := stress(l, opts)
	elapsed := time.Since(began)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	st := l.Stats()
	ms := metrics.GetStats()
	fmt.Fprintf(out, "operations: %s in %s (seed %d)\n", humanize.Comma(int64(opts.ops)), elapsed.Round(time.Millisecond), opts.seed)
	fmt.Fprintf(out, "layout:     %s\n", st)
	fmt.Fprintf(out, "structure:  %s splits, %s merges, %s sorts\n",
		humanize.Comma(ms.Splits), humanize.Comma(ms.Merges), humanize.Comma(ms.SortCount))
	if opts.memoryLimit > 0 {
		fmt.Fprintf(out, "refused:    %s inserts over the memory budget\n", humanize.Comma(refused))
	}
	return 0
}

// stress replays a random workload against l and a model and fails on the
// first divergence. Inserts refused by the memory budget are counted and
// skipped.
func stress(l *biglist.List[int64], opts stressOptions) (int64, error) {
	rng := testutil.NewRNG(opts.seed)
	m := testutil.NewModel[int64](nil)
	var refused int64

	for step := 0; step < opts.ops; step++ {
		n := m.Len()
		var err error
		switch op := rng.Intn(16); {
		case op < 6 || n == 0:
			i, v := rng.Int63n(n+1), int64(rng.Intn(1_000_000))
			if err = l.Insert(i, v); err == nil {
				m.Insert(i, v)
			}
		case op < 8:
			i := rng.Int63n(n + 1)
			vs := make([]int64, rng.Intn(2*opts.maxSegment))
			for j := range vs {
				vs[j] = int64(rng.Intn(1_000_000))
			}
			if err = l.InsertRange(i, vs); err == nil {
				m.Insert(i, vs...)
			}
		case op < 11:
			i := rng.Int63n(n)
			var v int64
			if v, err = l.RemoveAt(i); err == nil && v != m.RemoveAt(i) {
				return refused, fmt.Errorf("step %d: RemoveAt(%d) returned %d", step, i, v)
			}
		case op < 12:
			i := rng.Int63n(n)
			c := rng.Int63n(min(n-i, int64(4*opts.maxSegment)) + 1)
			if err = l.RemoveRange(i, c); err == nil {
				m.RemoveRange(i, c)
			}
		case op < 13:
			i := rng.Int63n(n)
			c := rng.Int63n(n - i + 1)
			if err = l.ReverseRange(i, c); err == nil {
				m.Reverse(i, c)
			}
		case op < 14:
			i := rng.Int63n(n)
			c := rng.Int63n(n - i + 1)
			if err = l.SortRange(i, c, nil); err == nil {
				m.Sort(i, c, cmp.Compare[int64])
			}
		case op < 15:
			i, v := rng.Int63n(n), int64(rng.Intn(1_000_000))
			if err = l.Set(i, v); err == nil {
				m.Set(i, v)
			}
		default:
			if rng.Chance(0.5) {
				err = l.TrimExcess()
			} else {
				r := int64(rng.Intn(97))
				pred := func(v int64) bool { return v%97 == r }
				var removed int64
				if removed, err = l.RemoveAll(pred); err == nil && removed != m.RemoveFunc(pred) {
					return refused, fmt.Errorf("step %d: RemoveAll removed %d", step, removed)
				}
			}
		}

		if errors.Is(err, biglist.ErrCapacity) {
			refused++
			continue
		}
		if err != nil {
			return refused, fmt.Errorf("step %d: %w", step, err)
		}
		if opts.verifyEvery > 0 && step%opts.verifyEvery == 0 {
			if err := verify(l, m); err != nil {
				return refused, fmt.Errorf("step %d: %w", step, err)
			}
		}
	}
	return refused, verify(l, m)
}

func verify(l *biglist.List[int64], m *testutil.Model[int64]) error {
	if l.Count() != m.Len() {
		return fmt.Errorf("count %d, model has %d", l.Count(), m.Len())
	}
	got, err := l.ToSlice()
	if err != nil {
		return err
	}
	if !slices.Equal(got, m.Items()) {
		return errors.New("contents differ from the model")
	}
	if l.Capacity() < l.Count() {
		return fmt.Errorf("capacity %d below count %d", l.Capacity(), l.Count())
	}
	return nil
}
