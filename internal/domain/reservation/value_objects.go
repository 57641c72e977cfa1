package reservation

import (
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/errs"
)

// MaxPartyCount bounds each age band of a party.
const MaxPartyCount = 5

// StayPeriod is the inclusive [arrival, departure] span of a stay. Both
// endpoints count as occupied nights: the night count equals the number of
// calendar days spanned, inclusive. This convention is deliberate and must
// not be re-derived from check-in/check-out arithmetic.
type StayPeriod struct {
	arrival   civil.Date
	departure civil.Date
}

func NewStayPeriod(arrival, departure civil.Date) (StayPeriod, error) {
	if arrival.IsZero() {
		return StayPeriod{}, errs.NewFieldError("arrivalDate", "must be set")
	}
	if departure.IsZero() {
		return StayPeriod{}, errs.NewFieldError("departureDate", "must be set")
	}
	if !arrival.Before(departure) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{arrival: arrival, departure: departure}, nil
}

func (p StayPeriod) Arrival() civil.Date   { return p.arrival }
func (p StayPeriod) Departure() civil.Date { return p.departure }

// NightCount is departure - arrival + 1, counting both endpoints.
func (p StayPeriod) NightCount() int {
	return p.arrival.DaysUntil(p.departure) + 1
}

// Dates enumerates every occupied night from arrival to departure inclusive.
func (p StayPeriod) Dates() []civil.Date {
	dates := make([]civil.Date, 0, p.NightCount())
	for d := p.arrival; !d.After(p.departure); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

func (p StayPeriod) Contains(d civil.Date) bool {
	return !d.Before(p.arrival) && !d.After(p.departure)
}

// StartsBefore reports whether the arrival precedes the given business date.
func (p StayPeriod) StartsBefore(today civil.Date) bool {
	return p.arrival.Before(today)
}

// PartyComposition counts the guests under a reservation by age band.
// Each band is bounded to [0, MaxPartyCount].
type PartyComposition struct {
	adults    int
	teenagers int
	children  int
}

func NewPartyComposition(adults, teenagers, children int) (PartyComposition, error) {
	if adults < 0 || adults > MaxPartyCount {
		return PartyComposition{}, errs.NewFieldError("adults", "must be between 0 and 5")
	}
	if teenagers < 0 || teenagers > MaxPartyCount {
		return PartyComposition{}, errs.NewFieldError("teenagers", "must be between 0 and 5")
	}
	if children < 0 || children > MaxPartyCount {
		return PartyComposition{}, errs.NewFieldError("children", "must be between 0 and 5")
	}
	return PartyComposition{adults: adults, teenagers: teenagers, children: children}, nil
}

func (p PartyComposition) Adults() int    { return p.adults }
func (p PartyComposition) Teenagers() int { return p.teenagers }
func (p PartyComposition) Children() int  { return p.children }

func (p PartyComposition) Total() int {
	return p.adults + p.teenagers + p.children
}
