/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/suparena/memrepo/config"
	"github.com/suparena/memrepo/registry"
)

// Options controls a processor run.
type Options struct {
	// ConfigPath is the identifier configuration file. When empty the path
	// is taken from MEMREPO_CONFIG after loading EnvFiles.
	ConfigPath string

	// EnvFiles are dotenv files loaded before resolving MEMREPO_CONFIG.
	EnvFiles []string

	// Types resolves entity names. Without it only strategy names are checked.
	Types *registry.Types
}

// Run loads and validates the configuration and writes the entity → strategy
// table to w.
func Run(opts Options, w io.Writer) error {
	cfg, err := load(opts)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if opts.Types == nil {
		fmt.Fprintln(tw, "ENTITY\tSTRATEGY")
		for _, name := range cfg.Entities() {
			fmt.Fprintf(tw, "%s\t%s\n", name, cfg.Identifiers[name])
		}
		return tw.Flush()
	}

	mapping, err := config.BuildMapping(cfg.Configurer(opts.Types))
	if err != nil {
		return err
	}

	fmt.Fprintln(tw, "ENTITY\tTYPE\tID\tSTRATEGY")
	for _, name := range opts.Types.Names() {
		entry, err := opts.Types.Lookup(name)
		if err != nil {
			return err
		}
		strategy, ok := cfg.Identifiers[name]
		if !ok {
			strategy = "(default)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, entry.Type, entry.IDType, strategy)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%d generator(s) registered\n", mapping.Len())
	return err
}

func load(opts Options) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.LoadEnv(opts.EnvFiles...)
}

// Main runs the processor for a command line tool, exiting with status 1 on failure.
func Main(opts Options) {
	if err := Run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
