package memory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pfischer/moneymoney/pkg/backend"
)

// fixtureFile mirrors the on-disk fixture layout: accounts and categories as
// flat lists, transactions and positions keyed by account number.
type fixtureFile struct {
	Accounts     []map[string]any            `yaml:"accounts"`
	Transactions map[string][]map[string]any `yaml:"transactions"`
	Positions    map[string][]map[string]any `yaml:"positions"`
	Categories   []map[string]any            `yaml:"categories"`
}

// Load builds a backend from YAML fixture data.
func Load(data []byte) (*Backend, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture data: %w", err)
	}

	b := New()
	for _, raw := range f.Accounts {
		b.accounts = append(b.accounts, backend.Raw(raw))
	}
	for accountNumber, txs := range f.Transactions {
		for _, raw := range txs {
			b.transactions[accountNumber] = append(b.transactions[accountNumber], coerceDates(backend.Raw(raw)))
		}
	}
	for accountNumber, positions := range f.Positions {
		for _, raw := range positions {
			b.positions[accountNumber] = append(b.positions[accountNumber], coerceDates(backend.Raw(raw)))
		}
	}
	for _, raw := range f.Categories {
		b.categories = append(b.categories, backend.Raw(raw))
	}
	return b, nil
}

// LoadFile builds a backend from a YAML fixture file.
func LoadFile(path string) (*Backend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file %s: %w", path, err)
	}
	return Load(data)
}
