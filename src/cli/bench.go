// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"path/filepath"
	"strconv"

	"github.com/H0llyW00dzZ/buffered-iterator/src/internal/bench"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func (a *app) newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [FILE...]",
		Short: "Compare parser throughput",
		Long: `Parse every FILE with each parser and report time, throughput and heap
allocations. Without FILE arguments the files from "generate" are used,
creating them first when missing.`,
		RunE: a.runBench,
	}

	f := cmd.Flags()
	f.IntP("iterations", "n", defaultIterations, "parses per file and parser")
	f.Int("read-buffer", defaultReadBufferSize, "read buffer size in bytes")
	addFixtureFlags(cmd)
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		var err error
		if paths, _, err = a.fixtures(cmd); err != nil {
			return err
		}
	}

	cfg := bench.Config{
		Iterations:     intFlag(cmd, "iterations", a.cfg.Bench.Iterations),
		ReadBufferSize: intFlag(cmd, "read-buffer", a.cfg.Bench.ReadBufferSize),
	}

	results, err := bench.Compare(cmd.Context(), paths, cfg)
	if err != nil {
		return err
	}
	for _, r := range results {
		a.log.Println(r)
	}
	return renderResults(cmd, results)
}

func renderResults(cmd *cobra.Command, results []bench.Result) error {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"File", "Size", "Parser", "Records", "Time/op", "Throughput", "Allocs/op"})

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			filepath.Base(r.Path),
			humanize.IBytes(uint64(r.Size)),
			string(r.Kind),
			humanize.Comma(int64(r.Records)),
			r.PerOp().String(),
			humanize.IBytes(uint64(r.Throughput())) + "/s",
			strconv.FormatUint(r.AllocsPerOp(), 10),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
