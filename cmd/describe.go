// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"saprfc/cli/internal/nwrfc"
	"saprfc/cli/internal/rfc"
)

var describeFlat bool

// describeCmd prints the decoded parameter tree of a function module.
var describeCmd = &cobra.Command{
	Use:         "describe FUNCTION",
	Short:       "Show the parameters of a remote function module",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{annotationRFC: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openSession()
		if err != nil {
			return err
		}
		defer conn.Close()

		fn, err := conn.Function(strings.ToUpper(args[0]))
		if err != nil {
			return err
		}
		defer fn.Close()

		var s string
		if describeFlat {
			s, err = pterm.DefaultTable.WithHasHeader().WithData(describeRows(fn)).Srender()
		} else {
			s, err = pterm.DefaultTree.WithRoot(describeTree(fn)).Srender()
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

func describeTree(fn *rfc.Function) pterm.TreeNode {
	return pterm.TreeNode{Text: fn.Name(), Children: treeNodes(fn.Parameters())}
}

func treeNodes(t rfc.Tree) []pterm.TreeNode {
	nodes := make([]pterm.TreeNode, 0, len(t))
	for _, p := range t {
		nodes = append(nodes, pterm.TreeNode{Text: describeLabel(p), Children: treeNodes(p.Fields())})
	}
	return nodes
}

func describeLabel(p *rfc.Parameter) string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Parent() == nil {
		b.WriteString(" " + p.Direction.String())
	}
	b.WriteString(" " + typeLabel(p))
	if p.Optional {
		b.WriteString(" optional")
	}
	if p.Default != "" {
		fmt.Fprintf(&b, " default %s", p.Default)
	}
	if p.Text != "" {
		b.WriteString(" - " + p.Text)
	}
	return b.String()
}

func typeLabel(p *rfc.Parameter) string {
	switch {
	case p.Type == nwrfc.TypeStructure, p.Type == nwrfc.TypeTable, p.Type == nwrfc.TypeString, p.Type == nwrfc.TypeXString:
		return p.Type.String()
	case p.Type == nwrfc.TypeBCD || p.Type == nwrfc.TypeFloat:
		return fmt.Sprintf("%s(%d,%d)", p.Type, p.NucLength, p.Decimals)
	}
	return fmt.Sprintf("%s(%d)", p.Type, p.NucLength)
}

// describeRows flattens the tree depth first, indenting nested names.
func describeRows(fn *rfc.Function) [][]string {
	rows := [][]string{{"Parameter", "Direction", "Type", "Length", "Decimals", "Optional"}}
	_ = fn.Parameters().Walk(func(depth int, p *rfc.Parameter) error {
		opt := ""
		if p.Optional {
			opt = "yes"
		}
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + p.Name,
			p.Direction.String(),
			p.Type.String(),
			strconv.Itoa(int(p.NucLength)),
			strconv.Itoa(int(p.Decimals)),
			opt,
		})
		return nil
	})
	return rows
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().BoolVar(&describeFlat, "flat", false, "Print a table instead of a tree")
}
