// Package normalize turns the heterogeneous, loosely-typed records returned
// by a backend into clean attribute records bound to an entity schema. It is
// a data-hygiene filter, not a validator: it never fails, it only drops,
// converts and reports.
package normalize

import (
	"time"

	"pfischer/moneymoney/internal/logging"
	"pfischer/moneymoney/internal/models"
	"pfischer/moneymoney/pkg/backend"
)

var log = logging.Default()

// SetLogger replaces the package logger used for schema-drift diagnostics.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// sentinelDate is the backend's convention for "no date set": any timestamp
// on or before the day after the Unix epoch is not a real date.
var sentinelDate = time.Date(1970, time.January, 2, 0, 0, 0, 0, time.UTC)

// Record produces a clean attribute record from a raw backend record.
//
// Keys in the schema's ignored set are dropped silently. Keys outside the
// declared set are retained but reported once at warn level; the export
// format is additive and unknown fields must not fail the load. Timestamp
// values are reduced to date-only values, and sentinel dates are dropped
// entirely so that every date present in the output is meaningful.
func Record(raw backend.Raw, schema models.Schema) models.Record {
	attrs := make(map[string]any, len(raw))
	for key, value := range raw {
		if schema.Ignored.Has(key) {
			continue
		}
		if !schema.Declared.Has(key) {
			log.Warn("unknown field in raw record",
				logging.Field{Key: logging.FieldEntity, Value: schema.Entity},
				logging.Field{Key: logging.FieldAttribute, Value: key})
		}
		if ts, ok := value.(time.Time); ok {
			day := DateOnly(ts)
			if !day.After(sentinelDate) {
				continue
			}
			value = day
		}
		attrs[key] = value
	}
	return models.NewRecord(schema, attrs)
}

// DateOnly discards the time-of-day portion of a timestamp, keeping the
// calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Balance flattens the nested [[amount currency] ...] balance shape of the
// accounts export into a Money value. Accounts report one pair per currency;
// only the first pair is exposed.
func Balance(value any) (models.Money, bool) {
	pairs, ok := value.([]any)
	if !ok || len(pairs) == 0 {
		return models.Money{}, false
	}
	pair, ok := pairs[0].([]any)
	if !ok || len(pair) < 2 {
		return models.Money{}, false
	}
	currency, ok := pair[1].(string)
	if !ok {
		return models.Money{}, false
	}
	switch amount := pair[0].(type) {
	case float64:
		return models.NewMoneyFromFloat(amount, currency), true
	case int:
		return models.NewMoneyFromFloat(float64(amount), currency), true
	case int64:
		return models.NewMoneyFromFloat(float64(amount), currency), true
	case uint64:
		return models.NewMoneyFromFloat(float64(amount), currency), true
	default:
		return models.Money{}, false
	}
}
