// Package export implements the transaction CSV export command.
package export

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"pfischer/moneymoney/cmd/root"
	"pfischer/moneymoney/internal/logging"
	"pfischer/moneymoney/pkg/moneymoney"
)

var output string

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions of all accounts to a CSV file",
	RunE:  exportFunc,
}

// Init registers the export command flags.
func Init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "output CSV file")
}

// row is the CSV shape of one exported transaction.
type row struct {
	Account           string `csv:"account"`
	ID                string `csv:"id"`
	Payee             string `csv:"accountNumber"`
	BankCode          string `csv:"bankCode"`
	Booked            bool   `csv:"booked"`
	Amount            string `csv:"amount"`
	Currency          string `csv:"currency"`
	Name              string `csv:"name"`
	BookingText       string `csv:"bookingText"`
	Purpose           string `csv:"purpose"`
	EndToEndReference string `csv:"endToEndReference"`
	CreditorID        string `csv:"creditorId"`
	MandateReference  string `csv:"mandateReference"`
	Category          string `csv:"category"`
	BookingDate       string `csv:"bookingDate"`
	ValueDate         string `csv:"valueDate"`
	Checkmark         bool   `csv:"checkmark"`
	Comment           string `csv:"comment"`
}

func exportFunc(cmd *cobra.Command, args []string) error {
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

	var rows []row
	q := moneymoney.Query{AgeDays: root.EffectiveAge()}
	for tx, err := range client.Transactions(cmd.Context(), q) {
		if err != nil {
			return err
		}
		category, _ := tx.Category()
		rows = append(rows, row{
			Account:           tx.Account().Name(),
			ID:                tx.ID(),
			Payee:             tx.Payee(),
			BankCode:          tx.BankCode(),
			Booked:            tx.Booked(),
			Amount:            tx.Amount().String(),
			Currency:          tx.Currency(),
			Name:              tx.Name(),
			BookingText:       tx.BookingText(),
			Purpose:           tx.Purpose(),
			EndToEndReference: tx.EndToEndReference(),
			CreditorID:        tx.CreditorID(),
			MandateReference:  tx.MandateReference(),
			Category:          category,
			BookingDate:       formatDate(tx.BookingDate()),
			ValueDate:         formatDate(tx.ValueDate()),
			Checkmark:         tx.Checkmark(),
			Comment:           tx.Comment(),
		})
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	root.Log.Info("exported transactions",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

func formatDate(d time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return d.Format("2006-01-02")
}
