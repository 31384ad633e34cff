// Command cyclescan measures how quickly a key's automaton trajectory
// revisits a previously seen state. It consumes only the automaton's
// public construction, stepping, and string rendering, and reports one
// TSV row per seed: the generation of the first repeat and whether the
// repeated state was already produced under another seed.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/talos-cipher/talos/talos/schedule"
)

var (
	configPath string
	cfg        = DefaultConfig()
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cyclescan",
		Short:        "scan automaton seeds for state-cycle repetition",
		SilenceUsage: true,
		RunE:         runScan,
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file (flags override it)")
	rootCmd.Flags().Uint32VarP(&cfg.Seeds, "seeds", "s", cfg.Seeds, "number of seeds to test")
	rootCmd.Flags().IntVarP(&cfg.Generations, "generations", "g", cfg.Generations, "generation bound per seed")
	rootCmd.Flags().BoolVarP(&cfg.Contiguous, "contiguous", "c", cfg.Contiguous, "test seeds 0..n-1 instead of random keys")
	rootCmd.Flags().StringVarP(&cfg.Template, "template", "t", cfg.Template, "glyph grid file (default: embedded shift template)")
	rootCmd.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "concurrent seed scans")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cyclescan: %v\n", err)
		os.Exit(1)
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		fileCfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		// Flags the user set explicitly win over the file.
		applyFlagOverrides(cmd, fileCfg)
		cfg = fileCfg
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	template := schedule.ShiftTemplate
	templateName := "(embedded shift template)"
	if cfg.Template != "" {
		data, err := os.ReadFile(cfg.Template)
		if err != nil {
			return errors.Wrapf(err, "reading template %s", cfg.Template)
		}
		template = string(data)
		templateName = cfg.Template
	}

	seeds := make([]uint32, cfg.Seeds)
	for i := range seeds {
		if cfg.Contiguous {
			seeds[i] = uint32(i)
		} else {
			seed, err := schedule.RandomKey()
			if err != nil {
				return errors.Wrap(err, "drawing a random seed")
			}
			seeds[i] = seed
		}
	}

	results, err := scanAll(seeds, template, cfg.Generations, cfg.Workers)
	if err != nil {
		return err
	}

	fmt.Printf("# Using contiguous seeds: %v\n", cfg.Contiguous)
	fmt.Printf("# Number of seeds: %d\n", cfg.Seeds)
	fmt.Printf("# Number of generations: %d\n", cfg.Generations)
	fmt.Printf("# Template: %s\n", templateName)
	fmt.Println("test\tn_generations\tseed\tavg_alive\tcontains_global_duplicate")
	for _, r := range results {
		fmt.Printf("%d\t%d\t%d\t%g\t%v\n", r.test, r.finalGeneration, r.seed, r.avgAlive, r.globalDuplicate)
	}
	return nil
}

// applyFlagOverrides copies explicitly set flag values onto a file config.
func applyFlagOverrides(cmd *cobra.Command, fileCfg *Config) {
	if cmd.Flags().Changed("seeds") {
		fileCfg.Seeds = cfg.Seeds
	}
	if cmd.Flags().Changed("generations") {
		fileCfg.Generations = cfg.Generations
	}
	if cmd.Flags().Changed("contiguous") {
		fileCfg.Contiguous = cfg.Contiguous
	}
	if cmd.Flags().Changed("template") {
		fileCfg.Template = cfg.Template
	}
	if cmd.Flags().Changed("workers") {
		fileCfg.Workers = cfg.Workers
	}
}
