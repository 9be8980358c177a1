package models

// Set is a collection of attribute names.
type Set map[string]struct{}

// NewSet builds a Set from the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Schema declares the attribute surface of one entity kind: which raw-record
// keys are part of the model, which are backend-internal and silently dropped
// during normalization, and which may be written back.
type Schema struct {
	Entity   string
	Declared Set
	Ignored  Set
	Mutable  Set
	ReadOnly Set
}

// Attribute names shared across schemas.
const (
	AttrID            = "id"
	AttrName          = "name"
	AttrAccountNumber = "accountNumber"
	AttrAmount        = "amount"
	AttrCurrency      = "currency"
	AttrBalance       = "balance"
	AttrPortfolio     = "portfolio"
	AttrGroup         = "group"
	AttrBooked        = "booked"
	AttrCheckmark     = "checkmark"
	AttrCategory      = "category"
	AttrComment       = "comment"
	AttrBookingDate   = "bookingDate"
	AttrValueDate     = "valueDate"
	AttrParentID      = "parentId"
)

// AccountSchema covers the records returned by the accounts export.
var AccountSchema = Schema{
	Entity: "account",
	Declared: NewSet(
		AttrName, AttrAccountNumber, AttrBalance, AttrCurrency,
		AttrPortfolio, AttrGroup, "bankCode", "owner", "uuid",
	),
	Ignored: NewSet("icon", "indentation", "refreshTimestamp", "attributes"),
}

// TransactionSchema covers the records returned by the transactions export.
// categoryId is a backend-internal identifier superseded by the readable
// category field and is always dropped.
var TransactionSchema = Schema{
	Entity: "transaction",
	Declared: NewSet(
		AttrID, AttrAccountNumber, AttrAmount, AttrCurrency, AttrName,
		AttrBooked, AttrCheckmark, AttrCategory, AttrComment,
		AttrBookingDate, AttrValueDate,
		"bankCode", "creditorId", "mandateReference", "endToEndReference",
		"purpose", "bookingText",
	),
	Ignored:  NewSet("categoryId", "accountUuid", "categoryUuid"),
	Mutable:  NewSet(AttrCheckmark, AttrComment),
	ReadOnly: NewSet(AttrID),
}

// PositionSchema covers the records returned by the portfolio export.
var PositionSchema = Schema{
	Entity: "position",
	Declared: NewSet(
		AttrID, AttrName, "isin", "market", "type",
		"price", "purchasePrice", "quantity", AttrAmount,
		"currencyOfPrice", "currencyOfAmount", "currencyOfProfit",
		"absoluteProfit", "relativeProfit", "tradeTimestamp",
	),
	Ignored: NewSet("accountUuid"),
}

// CategorySchema covers the records returned by the categories export.
var CategorySchema = Schema{
	Entity:   "category",
	Declared: NewSet(AttrID, AttrName, AttrParentID, AttrGroup, AttrCurrency),
	Ignored:  NewSet("icon", "indentation", "rules", "budget", "default"),
}
