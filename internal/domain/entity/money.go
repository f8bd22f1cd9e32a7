package entity

import "github.com/shopspring/decimal"

func init() {
	// Prices go out as 29.99 rather than "29.99"; the admin frontend does arithmetic on them.
	decimal.MarshalJSONWithoutQuotes = true
}
