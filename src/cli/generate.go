// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/H0llyW00dzZ/buffered-iterator/src/internal/gen"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (a *app) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random record files of the given sizes",
		Long: `Write one file of random records per size into --dir. Files that already
exist with the right size are kept.`,
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}
	addFixtureFlags(cmd)
	return cmd
}

func addFixtureFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("dir", defaultDataDir, "directory for generated files")
	f.StringSlice("sizes", defaultSizes, "file sizes, e.g. 1KiB,1MiB,1GiB")
	f.Uint64("seed", defaultSeed, "random seed")
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	paths, sizes, err := a.fixtures(cmd)
	if err != nil {
		return err
	}
	for i, path := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, humanize.IBytes(uint64(sizes[i])))
	}
	return nil
}

// fixtures generates or reuses the files named by --dir, --sizes and --seed.
func (a *app) fixtures(cmd *cobra.Command) ([]string, []int64, error) {
	dir := stringFlag(cmd, "dir", a.cfg.Generate.Dir)
	seed := uint64Flag(cmd, "seed", a.cfg.Generate.Seed)
	sizes, err := parseSizes(stringSliceFlag(cmd, "sizes", a.cfg.Generate.Sizes))
	if err != nil {
		return nil, nil, err
	}

	a.log.Printf("generating %d files in %s", len(sizes), dir)
	paths, err := gen.Files(cmd.Context(), dir, sizes, seed)
	if err != nil {
		return nil, nil, err
	}
	return paths, sizes, nil
}

func parseSizes(values []string) ([]int64, error) {
	sizes := make([]int64, 0, len(values))
	for _, v := range values {
		n, err := humanize.ParseBytes(v)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSize, v)
		}
		sizes = append(sizes, int64(n))
	}
	return sizes, nil
}
