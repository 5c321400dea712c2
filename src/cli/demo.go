// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"fmt"

	"github.com/H0llyW00dzZ/buffered-iterator/src/recordio"
	"github.com/spf13/cobra"
)

// demoStream holds three records: [5], [] and [3 4 5 6].
var demoStream = []byte{1, 5, 0, 4, 3, 4, 5, 6}

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Parse a built-in stream and print each record",
		Args:  cobra.NoArgs,
		RunE:  a.runDemo,
	}
}

func (a *app) runDemo(cmd *cobra.Command, _ []string) error {
	p := recordio.NewBufferedParser(recordio.NewReaderSource(bytes.NewReader(demoStream)))
	defer p.Close()

	out := cmd.OutOrStdout()
	for v, err := range p.All() {
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "slice: %v\n", v)
	}
	return nil
}
