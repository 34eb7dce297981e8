package response

import (
	"time"

	"property-rental/internal/pkg/dateonly"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

func init() {
	// rates are written as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Money is a monetary amount written as a JSON number with two decimals.
type Money decimal.Decimal

func NewMoney(d decimal.Decimal) Money {
	return Money(d)
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.Decimal(m)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*m = Money(d)
	return nil
}

// Date is a calendar date in YYYY-MM-DD form.
type Date string

var converters = []copier.TypeConverter{
	{
		SrcType: decimal.Decimal{},
		DstType: Money{},
		Fn: func(src any) (any, error) {
			return Money(src.(decimal.Decimal)), nil
		},
	},
	{
		SrcType: (*decimal.Decimal)(nil),
		DstType: (*Money)(nil),
		Fn: func(src any) (any, error) {
			d := src.(*decimal.Decimal)
			if d == nil {
				return (*Money)(nil), nil
			}
			m := Money(*d)
			return &m, nil
		},
	},
	{
		SrcType: time.Time{},
		DstType: Date(""),
		Fn: func(src any) (any, error) {
			return Date(dateonly.Format(src.(time.Time))), nil
		},
	},
}

func copyFrom(dst, src any) {
	// field sets are fixed at compile time; a failure here is a programming error
	if err := copier.CopyWithOption(dst, src, copier.Option{Converters: converters}); err != nil {
		panic(err)
	}
}
