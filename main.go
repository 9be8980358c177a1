package main

import (
	"os"

	"pfischer/moneymoney/cmd/accounts"
	"pfischer/moneymoney/cmd/categories"
	"pfischer/moneymoney/cmd/check"
	"pfischer/moneymoney/cmd/export"
	"pfischer/moneymoney/cmd/root"
)

func main() {
	root.Init()
	export.Init()

	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(check.Cmd)
	root.Cmd.AddCommand(categories.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
