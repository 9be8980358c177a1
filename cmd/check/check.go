// Package check implements the command that marks booked-but-unchecked
// transactions as checked.
package check

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pfischer/moneymoney/cmd/root"
	"pfischer/moneymoney/internal/logging"
	"pfischer/moneymoney/pkg/backend"
	"pfischer/moneymoney/pkg/moneymoney"
)

// Cmd represents the check command.
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Mark booked-but-unchecked transactions as checked",
	Long: `check walks all booked transactions within the look-back window that do
not carry the checkmark yet and sets it, so the next run starts from a clean
slate.`,
	RunE: checkFunc,
}

func checkFunc(cmd *cobra.Command, args []string) error {
	b, err := root.Backend()
	if err != nil {
		return err
	}
	client, err := moneymoney.New(cmd.Context(),
		moneymoney.WithBackend(b),
		moneymoney.WithLogger(root.Log))
	if err != nil {
		if errors.Is(err, backend.ErrLocked) {
			return fmt.Errorf("the MoneyMoney database is locked, unlock it in the application first")
		}
		return err
	}

	q := moneymoney.Query{
		AgeDays: root.EffectiveAge(),
		Booked:  moneymoney.Bool(true),
		Checked: moneymoney.Bool(false),
	}

	var checked int
	for tx, err := range client.Transactions(cmd.Context(), q) {
		if err != nil {
			return err
		}
		if err := tx.SetCheckmark(cmd.Context(), true); err != nil {
			return fmt.Errorf("checking transaction %s: %w", tx.ID(), err)
		}
		root.Log.Debug("checked transaction",
			logging.Field{Key: logging.FieldTransactionID, Value: tx.ID()},
			logging.Field{Key: logging.FieldAccount, Value: tx.Account().Name()})
		checked++
	}

	root.Log.Info("marked transactions as checked",
		logging.Field{Key: logging.FieldCount, Value: checked})
	return nil
}
