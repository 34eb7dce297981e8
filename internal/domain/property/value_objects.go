package property

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"property-rental/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxTitleLength   = 200
	MaxAddressLength = 200
	MaxCountryLength = 3
	// MaxCount bounds rooms and capacity to the integer columns that store them.
	MaxCount = math.MaxInt32

	rateScale  = 4
	priceScale = 2
)

var ErrCommissionRateSum = errs.Mark(
	errs.New("The sum of seazone_rate, host_rate, and owner_rate must equal 1."),
	errs.ErrBusinessRule,
)

const (
	msgRateRange     = "Ensure this value is between 0 and 1."
	msgRateScale     = "Ensure that there are no more than 4 decimal places."
	msgPriceNegative = "Ensure this value is greater than or equal to 0."
	msgPriceScale    = "Ensure that there are no more than 2 decimal places."
	msgPriceTooLarge = "Ensure that there are no more than 10 digits in total."
	msgRequired      = "This field may not be blank."
	msgTooLong       = "Ensure this field has no more than %d characters."
	msgCountTooLarge = "Ensure this value is less than or equal to 2147483647."
)

var (
	one      = decimal.NewFromInt(1)
	maxPrice = decimal.RequireFromString("99999999.99")
)

// CommissionRates holds the three-way split configured on a property. The
// rates are kept as exact decimals so the sum check is an equality, never an
// approximation.
type CommissionRates struct {
	seazone decimal.Decimal
	host    decimal.Decimal
	owner   decimal.Decimal
}

func NewCommissionRates(seazone, host, owner decimal.Decimal) (CommissionRates, error) {
	fe := errs.NewFieldErrors()
	checkRate(fe, "seazone_rate", seazone)
	checkRate(fe, "host_rate", host)
	checkRate(fe, "owner_rate", owner)
	if err := fe.Err(); err != nil {
		return CommissionRates{}, err
	}

	if !seazone.Add(host).Add(owner).Equal(one) {
		return CommissionRates{}, ErrCommissionRateSum
	}

	return CommissionRates{seazone: seazone, host: host, owner: owner}, nil
}

// ReconstructCommissionRates skips validation for rows already in storage.
func ReconstructCommissionRates(seazone, host, owner decimal.Decimal) CommissionRates {
	return CommissionRates{seazone: seazone, host: host, owner: owner}
}

func checkRate(fe *errs.FieldErrors, field string, v decimal.Decimal) {
	if v.IsNegative() || v.GreaterThan(one) {
		fe.Add(field, msgRateRange)
		return
	}
	if !v.Equal(v.Round(rateScale)) {
		fe.Add(field, msgRateScale)
	}
}

func (r CommissionRates) Seazone() decimal.Decimal { return r.seazone }
func (r CommissionRates) Host() decimal.Decimal    { return r.host }
func (r CommissionRates) Owner() decimal.Decimal   { return r.owner }

type Address struct {
	Street       string
	Number       string
	Neighborhood string
	City         string
	Country      string
}

func (a Address) normalized() Address {
	return Address{
		Street:       strings.TrimSpace(a.Street),
		Number:       strings.TrimSpace(a.Number),
		Neighborhood: strings.TrimSpace(a.Neighborhood),
		City:         strings.TrimSpace(a.City),
		Country:      strings.ToUpper(strings.TrimSpace(a.Country)),
	}
}

func (a Address) validate(fe *errs.FieldErrors) {
	checkText(fe, "address_street", a.Street, MaxAddressLength)
	checkText(fe, "address_number", a.Number, MaxAddressLength)
	checkText(fe, "address_neighborhood", a.Neighborhood, MaxAddressLength)
	checkText(fe, "address_city", a.City, MaxAddressLength)
	checkText(fe, "country", a.Country, MaxCountryLength)
}

func checkText(fe *errs.FieldErrors, field, v string, maxLen int) {
	if v == "" {
		fe.Add(field, msgRequired)
		return
	}
	if utf8.RuneCountInString(v) > maxLen {
		fe.Add(field, fmt.Sprintf(msgTooLong, maxLen))
	}
}

func checkPrice(fe *errs.FieldErrors, field string, v decimal.Decimal) {
	switch {
	case v.IsNegative():
		fe.Add(field, msgPriceNegative)
	case v.GreaterThan(maxPrice):
		fe.Add(field, msgPriceTooLarge)
	case !v.Equal(v.Round(priceScale)):
		fe.Add(field, msgPriceScale)
	}
}
