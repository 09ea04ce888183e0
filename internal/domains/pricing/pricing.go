// Package pricing computes what a stay costs.
package pricing

import (
	"math"
	"time"

	"hotel/config"
	"hotel/shared/constant"
	"hotel/shared/currency"
	"hotel/shared/model"

	"github.com/rs/zerolog/log"
)

const DefaultNightlyRate int64 = 120000

// Quote is a priced stay as shown to the front desk.
type Quote struct {
	Nights  int64        `json:"nights"`
	Amount  model.Amount `json:"amount"`
	Display string       `json:"display"`
}

type Rule struct {
	nightlyRate int64
	formatter   currency.Formatter
}

func NewRule(nightlyRate int64, formatter currency.Formatter) Rule {
	return Rule{
		nightlyRate: nightlyRate,
		formatter:   formatter,
	}
}

// New reads the rate and display settings from PRICING_*. A bad currency or
// locale degrades display to plain digits; prices are unaffected.
func New(cfg *config.Config) Rule {
	rate := cfg.Pricing.NightlyRate
	if rate <= 0 {
		rate = DefaultNightlyRate
	}

	formatter, err := currency.New(cfg.Pricing.Currency, cfg.Pricing.Locale)
	if err != nil {
		log.Error().Err(err).Msg("invalid pricing display settings, amounts are shown without currency")
	}

	return NewRule(rate, formatter)
}

func (r Rule) NightlyRate() int64 {
	return r.nightlyRate
}

// Nights is the number of started days between check-in and check-out.
// Either bound unset gives 0; a check-out before check-in gives a negative count.
func (r Rule) Nights(checkIn, checkOut time.Time) int64 {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	days := wallClock(checkOut).Sub(wallClock(checkIn)).Hours() / constant.HoursPerDay

	return int64(math.Ceil(days))
}

func (r Rule) PriceFor(checkIn, checkOut time.Time) model.Amount {
	return model.Amount(r.Nights(checkIn, checkOut) * r.nightlyRate)
}

func (r Rule) Display(amount model.Amount) string {
	return r.formatter.Format(int64(amount))
}

func (r Rule) Quote(checkIn, checkOut time.Time) Quote {
	nights := r.Nights(checkIn, checkOut)
	amount := model.Amount(nights * r.nightlyRate)

	return Quote{
		Nights:  nights,
		Amount:  amount,
		Display: r.Display(amount),
	}
}

// wallClock moves t onto UTC keeping its calendar reading, so a day that is
// 23 or 25 hours long in its own zone still counts as one.
func wallClock(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	return time.Date(year, month, day, hour, minute, second, t.Nanosecond(), time.UTC)
}
