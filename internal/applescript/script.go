package applescript

import (
	"fmt"
	"strings"
	"time"
)

// scriptDateLayout is the dd/mm/yyyy form the app accepts in export commands.
const scriptDateLayout = "02/01/2006"

func accountsScript() string {
	return `tell application "MoneyMoney" to export accounts`
}

func transactionsScript(accountNumber string, from, to time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `tell application "MoneyMoney" to export transactions from account %s from date %s`,
		quote(accountNumber), quote(from.Format(scriptDateLayout)))
	if !to.IsZero() {
		fmt.Fprintf(&sb, ` to date %s`, quote(to.Format(scriptDateLayout)))
	}
	sb.WriteString(` as "plist"`)
	return sb.String()
}

func positionsScript(accountNumber string) string {
	return fmt.Sprintf(`tell application "MoneyMoney" to export portfolio from account %s as "plist"`,
		quote(accountNumber))
}

func categoriesScript() string {
	return `tell application "MoneyMoney" to export categories as "plist"`
}

func setFieldScript(transactionID, field, value string) string {
	return fmt.Sprintf(`tell application "MoneyMoney" to set transaction id %s %s to %s`,
		transactionID, field, quote(value))
}

// quote renders s as an AppleScript string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
