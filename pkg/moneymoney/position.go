package moneymoney

import (
	"time"

	"github.com/shopspring/decimal"

	"pfischer/moneymoney/internal/models"
)

// Position is a read-only typed view over one normalized portfolio holding.
// Positions are created fresh per query and never mutated.
type Position struct {
	account *Account
	record  models.Record
}

// Account returns the owning portfolio account.
func (p *Position) Account() *Account {
	return p.account
}

// Name returns the instrument name.
func (p *Position) Name() string { return p.str(models.AttrName) }

// ISIN returns the instrument's ISIN.
func (p *Position) ISIN() string { return p.str("isin") }

// Market returns the trading venue.
func (p *Position) Market() string { return p.str("market") }

// Type returns the instrument type, e.g. "share" or "fund".
func (p *Position) Type() string { return p.str("type") }

// Price returns the current price per unit.
func (p *Position) Price() decimal.Decimal { return p.dec("price") }

// PurchasePrice returns the average purchase price per unit.
func (p *Position) PurchasePrice() decimal.Decimal { return p.dec("purchasePrice") }

// Quantity returns the number of units held.
func (p *Position) Quantity() decimal.Decimal { return p.dec("quantity") }

// Amount returns the current market value of the holding.
func (p *Position) Amount() decimal.Decimal { return p.dec(models.AttrAmount) }

// PriceCurrency returns the currency of Price.
func (p *Position) PriceCurrency() string { return p.str("currencyOfPrice") }

// AmountCurrency returns the currency of Amount.
func (p *Position) AmountCurrency() string { return p.str("currencyOfAmount") }

// AbsoluteProfit returns the unrealized profit in the profit currency.
func (p *Position) AbsoluteProfit() decimal.Decimal { return p.dec("absoluteProfit") }

// RelativeProfit returns the unrealized profit as a percentage.
func (p *Position) RelativeProfit() decimal.Decimal { return p.dec("relativeProfit") }

// TradeDate returns the date of the price quote; ok is false when absent.
func (p *Position) TradeDate() (time.Time, bool) {
	d, ok, _ := p.record.Date("tradeTimestamp")
	return d, ok
}

// Attr gives access to any declared position attribute by name.
func (p *Position) Attr(name string) (any, bool, error) {
	return p.record.Get(name)
}

func (p *Position) str(name string) string {
	s, _, _ := p.record.String(name)
	return s
}

func (p *Position) dec(name string) decimal.Decimal {
	d, _, _ := p.record.Decimal(name)
	return d
}
