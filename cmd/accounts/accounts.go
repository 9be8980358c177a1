// Package accounts implements the account listing command.
package accounts

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pfischer/moneymoney/cmd/root"
	"pfischer/moneymoney/pkg/moneymoney"
)

// Cmd represents the accounts command.
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts and portfolios with their balances",
	RunE:  accountsFunc,
}

func accountsFunc(cmd *cobra.Command, args []string) error {
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

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "TYPE\tNAME\tACCOUNT NUMBER\tBALANCE")
	for a := range client.Accounts() {
		fmt.Fprintf(w, "account\t%s\t%s\t%s\n", a.Name(), a.AccountNumber(), a.Balance())
	}
	for a := range client.Portfolios() {
		fmt.Fprintf(w, "portfolio\t%s\t%s\t%s\n", a.Name(), a.AccountNumber(), a.Balance())
	}
	return nil
}
