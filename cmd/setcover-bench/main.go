// Command setcover-bench generates synthetic set cover instances and
// times the solver variants against them.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/matthiaskaeding/setcover"
	"github.com/matthiaskaeding/setcover/greedy"
	"github.com/matthiaskaeding/setcover/internal/dataset"
)

var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Generate struct {
		Output    string `short:"o" help:"Destination CSV file" default:"data.csv"`
		NSets     int    `help:"Number of candidate sets" default:"100000"`
		NElements int    `help:"Size of the universe" default:"2000"`
		NRows     int    `help:"Number of (set, element) rows" default:"10000000"`
		Seed      int64  `help:"Random seed" default:"333"`
	} `cmd:"" help:"Generate a synthetic instance and write it to CSV"`

	Run struct {
		Data      string   `short:"d" help:"Instance CSV file (generated in memory when omitted)"`
		Scenarios string   `short:"s" help:"YAML scenario file (overrides --data)"`
		Variants  []string `help:"Variants to time" default:"bitvec,standard,textbook"`
	} `cmd:"" help:"Time solver variants against an instance"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	var err error
	switch ctx.Command() {
	case "generate":
		err = runGenerate()
	case "run":
		err = runBenchmarks()
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		slog.Error("setcover-bench failed", "error", err)
		os.Exit(1)
	}
}

func runGenerate() error {
	spec := dataset.Spec{
		NSets:     CLI.Generate.NSets,
		NElements: CLI.Generate.NElements,
		NRows:     CLI.Generate.NRows,
		Seed:      CLI.Generate.Seed,
	}
	slog.Info("generating instance",
		"sets", humanize.Comma(int64(spec.NSets)),
		"elements", humanize.Comma(int64(spec.NElements)),
		"rows", humanize.Comma(int64(spec.NRows)),
		"seed", spec.Seed)

	rows, err := dataset.Generate(spec)
	if err != nil {
		return err
	}

	f, err := os.Create(CLI.Generate.Output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := dataset.WriteCSV(f, rows); err != nil {
		return err
	}
	slog.Info("wrote instance", "path", CLI.Generate.Output)
	return nil
}

func runBenchmarks() error {
	variants := make([]greedy.Variant, 0, len(CLI.Run.Variants))
	for _, name := range CLI.Run.Variants {
		v, err := setcover.ParseVariant(name)
		if err != nil {
			return err
		}
		variants = append(variants, v)
	}

	if CLI.Run.Scenarios != "" {
		specs, err := dataset.LoadScenarios(CLI.Run.Scenarios)
		if err != nil {
			return err
		}
		for _, spec := range specs {
			rows, err := dataset.Generate(spec)
			if err != nil {
				return err
			}
			if err := timeVariants(spec.Name, rows, variants); err != nil {
				return err
			}
		}
		return nil
	}

	rows, err := loadOrGenerate()
	if err != nil {
		return err
	}
	return timeVariants("instance", rows, variants)
}

func loadOrGenerate() ([]dataset.Row, error) {
	if CLI.Run.Data == "" {
		slog.Debug("no data file given, generating default instance in memory")
		return dataset.Generate(dataset.DefaultSpec())
	}
	f, err := os.Open(CLI.Run.Data)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadCSV(f)
}

func timeVariants(name string, rows []dataset.Row, variants []greedy.Variant) error {
	sets := dataset.Sets(rows)
	slog.Info("loaded instance",
		"name", name,
		"sets", humanize.Comma(int64(len(sets))),
		"rows", humanize.Comma(int64(len(rows))))

	for _, variant := range variants {
		start := time.Now()
		cover, err := setcover.Cover(sets, variant)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("variant %s: %w", variant, err)
		}
		if err := verifyCover(sets, cover); err != nil {
			return fmt.Errorf("variant %s: %w", variant, err)
		}
		slog.Info("solved",
			"name", name,
			"variant", variant.String(),
			"cover_size", len(cover),
			"elapsed", elapsed)
	}
	return nil
}

// verifyCover checks that the chosen sets cover the instance's universe,
// mirroring the verification the historical benchmark script performed.
func verifyCover(sets map[int64][]int64, cover []int64) error {
	universe := make(map[int64]struct{})
	for _, elements := range sets {
		for _, e := range elements {
			universe[e] = struct{}{}
		}
	}
	for _, key := range cover {
		for _, e := range sets[key] {
			delete(universe, e)
		}
	}
	if len(universe) != 0 {
		return fmt.Errorf("cover misses %d element(s)", len(universe))
	}
	return nil
}
