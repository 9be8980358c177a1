// Package categories implements the category tree listing command.
package categories

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pfischer/moneymoney/cmd/root"
	"pfischer/moneymoney/pkg/moneymoney"
)

// Cmd represents the categories command.
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category tree",
	RunE:  categoriesFunc,
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	b, err := root.Backend()
	if err != nil {
		return err
	}
	client, err := moneymoney.New(cmd.Context(),
		moneymoney.WithBackend(b),
		moneymoney.WithLogger(root.Log))
	if err != nil {
		return err
	}

	children := make(map[string][]moneymoney.Category)
	var roots []moneymoney.Category
	for c := range client.Categories() {
		if parent, ok := c.ParentID(); ok {
			children[parent] = append(children[parent], c)
		} else {
			roots = append(roots, c)
		}
	}

	var print func(c moneymoney.Category, depth int)
	print = func(c moneymoney.Category, depth int) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", strings.Repeat("  ", depth), c.Name())
		for _, child := range children[c.ID()] {
			print(child, depth+1)
		}
	}
	for _, c := range roots {
		print(c, 0)
	}
	return nil
}
