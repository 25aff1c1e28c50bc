// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var pingCount int

// pingCmd logs on and calls RFC_PING, reporting the round trip of each call.
var pingCmd = &cobra.Command{
	Use:         "ping",
	Short:       "Log on and measure RFC round trips",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationRFC: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openSession()
		if err != nil {
			return err
		}
		defer conn.Close()

		fn, err := conn.Function("RFC_PING")
		if err != nil {
			return err
		}
		defer fn.Close()

		out := cmd.OutOrStdout()
		var total time.Duration
		for i := 1; i <= pingCount; i++ {
			start := time.Now()
			if err := fn.Call(); err != nil {
				return err
			}
			d := time.Since(start)
			total += d
			fmt.Fprintf(out, "RFC_PING #%d: %s\n", i, d.Round(time.Microsecond))
		}
		if pingCount > 1 {
			fmt.Fprintf(out, "average %s over %d calls\n", (total / time.Duration(pingCount)).Round(time.Microsecond), pingCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
	pingCmd.Flags().IntVarP(&pingCount, "count", "c", 1, "Number of calls")
}
