package reservation

// Status is externally owned: the front desk (or a day-rollover job) moves
// a reservation through the sequence explicitly. It is never derived from
// the stay dates.
type Status string

const (
	StatusExpected    Status = "expected"
	StatusArriving    Status = "arriving"
	StatusInHouse     Status = "in_house"
	StatusDeparturing Status = "departuring"
	StatusCheckOut    Status = "check_out"
	StatusCanceled    Status = "canceled"
)

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusExpected, StatusArriving, StatusInHouse,
		StatusDeparturing, StatusCheckOut, StatusCanceled:
		return true
	default:
		return false
	}
}
