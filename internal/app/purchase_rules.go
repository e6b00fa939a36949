package app

import (
	"time"

	"github.com/shopspring/decimal"
)

// FirstPurchaseLimit caps the value of a customer's very first order.
var FirstPurchaseLimit = decimal.NewFromInt(100)

const (
	businessDayStart = 8 * time.Hour
	businessDayEnd   = 18 * time.Hour
)

// DenialReason names the rule that turned a purchase down.
type DenialReason string

const (
	ReasonNone                 DenialReason = ""
	ReasonPurchasedThisMonth   DenialReason = "purchased_this_month"
	ReasonFirstPurchaseLimit   DenialReason = "first_purchase_limit"
	ReasonOutsideBusinessHours DenialReason = "outside_business_hours"
)

// oneMonthBefore steps back one calendar month, clamping the day to the
// length of the target month (Mar 31 -> Feb 28/29). time.AddDate would
// normalize Feb 31 into early March instead.
func oneMonthBefore(t time.Time) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month-1, 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// withinFirstPurchaseLimit is inclusive: exactly FirstPurchaseLimit is allowed.
func withinFirstPurchaseLimit(value decimal.Decimal) bool {
	return value.LessThanOrEqual(FirstPurchaseLimit)
}

// withinBusinessHours reports whether t falls on Monday-Friday between 08:00
// and 18:00 UTC, both boundary instants included.
func withinBusinessHours(t time.Time) bool {
	t = t.UTC()
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	year, month, day := t.Date()
	sinceMidnight := t.Sub(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	return sinceMidnight >= businessDayStart && sinceMidnight <= businessDayEnd
}
