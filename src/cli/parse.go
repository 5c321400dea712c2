// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/H0llyW00dzZ/buffered-iterator/src/internal/metrics"
	"github.com/H0llyW00dzZ/buffered-iterator/src/recordio"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

const (
	modeBuffered   = "buffered"
	modeAllocating = "allocating"

	formatText  = "text"
	formatHex   = "hex"
	formatJSON  = "json"
	formatTable = "table"
)

func (a *app) newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE|-",
		Short: "Parse a record file and print its records",
		Long: `Parse a stream of [1-byte length][payload] records from FILE, or from
standard input when FILE is "-", and print every payload.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runParse,
	}

	f := cmd.Flags()
	f.StringP("mode", "m", modeBuffered, "parser: buffered or allocating")
	f.StringP("format", "f", formatText, "output: text, hex, json or table")
	f.Int("read-buffer", defaultReadBufferSize, "read buffer size in bytes")
	f.Bool("retain", false, "keep every record view alive until the end (buffered mode)")
	f.String("metrics-file", "", "write parser statistics in Prometheus text format to this file")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	mode := stringFlag(cmd, "mode", a.cfg.Parse.Mode)
	if !slices.Contains(parseModes, mode) {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	format := stringFlag(cmd, "format", a.cfg.Parse.Format)
	pr, err := newPrinter(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}
	bufSize := intFlag(cmd, "read-buffer", a.cfg.Parse.ReadBufferSize)
	retain, _ := cmd.Flags().GetBool("retain")
	metricsFile, _ := cmd.Flags().GetString("metrics-file")

	in, closeIn, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeIn()

	src := recordio.NewBufferedSource(in, max(bufSize, 16))
	ctx := cmd.Context()

	var (
		stats  recordio.Stats
		parser metrics.StatsSource
	)
	switch mode {
	case modeAllocating:
		p := recordio.NewAllocatingParser(src)
		parser = p
		err = parseAllocating(ctx, p, pr)
		stats = p.Stats()
	default:
		p := recordio.NewBufferedParser(src)
		parser = p
		err = parseBuffered(ctx, p, pr, retain)
		stats = p.Stats()
		p.Close()
	}
	if err != nil {
		return err
	}
	if err := pr.Flush(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	a.log.Printf("parsed %d records (%s) with the %s parser, %d buffer allocations, %d reuses",
		stats.Records, humanize.IBytes(stats.Bytes), mode, stats.Allocations, stats.Reuses)

	if metricsFile != "" {
		if err := metrics.WriteTextfile(metricsFile, metrics.NewParserCollector(mode, parser)); err != nil {
			return err
		}
		a.log.Printf("metrics written to %s", metricsFile)
	}
	return nil
}

func parseAllocating(ctx context.Context, p *recordio.AllocatingParser, pr printer) error {
	i := 0
	for payload, err := range p.All() {
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := pr.Print(i, payload); err != nil {
			return err
		}
		i++
	}
	return nil
}

func parseBuffered(ctx context.Context, p *recordio.BufferedParser, pr printer, retain bool) error {
	var kept []*recordio.View
	defer func() {
		for _, v := range kept {
			v.Release()
		}
	}()

	i := 0
	for v, err := range p.All() {
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if retain {
			kept = append(kept, v.Clone())
		}
		if err := pr.Print(i, v.Bytes()); err != nil {
			return err
		}
		i++
	}
	return nil
}

func openInput(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// printer renders records in one output format. The payload passed to
// Print is only valid for the duration of the call.
type printer interface {
	Print(index int, payload []byte) error
	Flush() error
}

func newPrinter(w io.Writer, format string) (printer, error) {
	switch format {
	case formatText:
		return &textPrinter{w: w}, nil
	case formatHex:
		return &hexPrinter{w: w}, nil
	case formatJSON:
		return &jsonPrinter{enc: json.NewEncoder(w)}, nil
	case formatTable:
		return &tablePrinter{w: w}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

type textPrinter struct{ w io.Writer }

func (p *textPrinter) Print(_ int, payload []byte) error {
	_, err := fmt.Fprintf(p.w, "slice: %v\n", payload)
	return err
}

func (p *textPrinter) Flush() error { return nil }

type hexPrinter struct{ w io.Writer }

func (p *hexPrinter) Print(index int, payload []byte) error {
	_, err := fmt.Fprintf(p.w, "%d\t%d\t%x\n", index, len(payload), payload)
	return err
}

func (p *hexPrinter) Flush() error { return nil }

// jsonRecord is one line of --format json.
type jsonRecord struct {
	Index   int    `json:"index"`
	Length  int    `json:"length"`
	Payload []byte `json:"payload"`
}

type jsonPrinter struct{ enc *json.Encoder }

func (p *jsonPrinter) Print(index int, payload []byte) error {
	return p.enc.Encode(jsonRecord{Index: index, Length: len(payload), Payload: payload})
}

func (p *jsonPrinter) Flush() error { return nil }

// tablePrinter buffers rows and renders a markdown table on Flush.
type tablePrinter struct {
	w    io.Writer
	rows [][]string
}

func (p *tablePrinter) Print(index int, payload []byte) error {
	p.rows = append(p.rows, []string{
		strconv.Itoa(index),
		strconv.Itoa(len(payload)),
		fmt.Sprintf("%x", payload),
	})
	return nil
}

func (p *tablePrinter) Flush() error {
	table := tablewriter.NewTable(p.w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Length", "Payload"})
	if err := table.Bulk(p.rows); err != nil {
		return err
	}
	return table.Render()
}
