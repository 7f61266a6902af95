package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seqworks/toxotype/internal/config"
	"github.com/seqworks/toxotype/internal/engine"
	"github.com/seqworks/toxotype/internal/logging"
	"github.com/seqworks/toxotype/internal/output"
	"github.com/seqworks/toxotype/internal/output/file"
	"github.com/seqworks/toxotype/internal/output/multi"
	"github.com/seqworks/toxotype/internal/output/stdout"
	"github.com/seqworks/toxotype/internal/pipeline"
	"github.com/seqworks/toxotype/internal/rules"
	"github.com/seqworks/toxotype/internal/source"
)

// version can be overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

var (
	flagConfig   string
	flagRules    string
	flagSample   string
	flagOutput   string
	flagVerbose  string
	flagParallel int
)

var rootCmd = &cobra.Command{
	Use:   "toxotype [flags] <alignments.tsv>...",
	Short: "Resolve bacterial toxinotypes from toxin reference alignments",
	Long: `toxotype classifies tab-delimited alignment records produced by comparing a
bacterial assembly against a protein toxin reference database, calls Toxin-A
and Toxin-B sub-types, and resolves the combined toxinotype code against an
ordered rule table.

Each alignment file is one sample. Use "-" to read a single sample from stdin.`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVarP(&flagRules, "rules", "r", "", "toxinotype rule table (tab-delimited)")
	rootCmd.Flags().StringVarP(&flagSample, "sample", "s", "", "sample ID (single input only; defaults to the file stem)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", `report destination: "stdout" or a file path`)
	rootCmd.Flags().StringVar(&flagVerbose, "verbosity", "", `report verbosity: "full" or "minimal"`)
	rootCmd.Flags().IntVarP(&flagParallel, "concurrency", "j", 0, "max samples typed at once (0 = no cap)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logging.Init(cfg.Output == "stdout", logging.ParseLevel(cfg.LogLevel))

	if flagSample != "" && len(args) > 1 {
		return fmt.Errorf("--sample is only valid with a single input file")
	}

	tbl, err := rules.LoadFile(cfg.RulePath)
	if err != nil {
		return err
	}

	out, err := buildOutput(cfg)
	if err != nil {
		return err
	}

	p := pipeline.New(engine.New(tbl), out)
	defer p.Close()

	var samples []pipeline.Sample
	for _, arg := range args {
		samples = append(samples, newSample(arg))
	}

	return p.Batch(cmd.Context(), samples, cfg.Concurrency)
}

// loadConfig layers defaults, an optional YAML file, env vars, then flags.
func loadConfig() (config.Config, error) {
	cfg := config.Load()
	if flagConfig != "" {
		loaded, err := config.LoadFile(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if flagRules != "" {
		cfg.RulePath = flagRules
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagVerbose != "" {
		cfg.Verbosity = flagVerbose
	}
	if flagParallel > 0 {
		cfg.Concurrency = flagParallel
	}
	return cfg, nil
}

func buildOutput(cfg config.Config) (output.Output, error) {
	verbosity := output.ParseVerbosity(cfg.Verbosity)
	if cfg.Output == "stdout" || cfg.Output == "" {
		return stdout.New(verbosity), nil
	}
	f, err := file.New(cfg.Output, verbosity)
	if err != nil {
		return nil, err
	}
	// Keep the terminal copy too; the file gets the authoritative report.
	return multi.New(f, stdout.New(output.Minimal)), nil
}

func newSample(arg string) pipeline.Sample {
	if arg == "-" {
		id := flagSample
		if id == "" {
			id = "stdin"
		}
		return pipeline.Sample{ID: id, Src: source.Reader{R: os.Stdin}}
	}
	id := flagSample
	if id == "" {
		base := filepath.Base(arg)
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return pipeline.Sample{ID: id, Src: source.File{Path: arg}}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
