package guest

import (
	"errors"
	"strings"
	"time"

	"hotel-frontdesk/internal/pkg/civil"

	"github.com/google/uuid"
)

var (
	ErrEmptyFirstName    = errors.New("first name cannot be empty")
	ErrEmptyLastName     = errors.New("last name cannot be empty")
	ErrInvalidGender     = errors.New("invalid gender")
	ErrBirthdateInFuture = errors.New("birthdate cannot be in the future")
)

// Profile is a guest who may hold a reservation or stay as a guest on
// someone else's reservation.
type Profile struct {
	id              uuid.UUID
	firstName       string
	middleName      string
	lastName        string
	birthdate       civil.Date
	gender          Gender
	nationality     string
	nationalityCode string
	address         string
	createdAt       time.Time
	updatedAt       time.Time
	deletedAt       *time.Time
}

func NewProfile(
	directory *NationalityDirectory,
	firstName, middleName, lastName string,
	birthdate civil.Date,
	gender Gender,
	nationality string,
	address string,
	now time.Time,
) (*Profile, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" {
		return nil, ErrEmptyFirstName
	}
	if lastName == "" {
		return nil, ErrEmptyLastName
	}
	if !gender.IsValid() {
		return nil, ErrInvalidGender
	}
	if !birthdate.IsZero() && birthdate.After(civil.DateOf(now)) {
		return nil, ErrBirthdateInFuture
	}

	code, err := directory.Resolve(nationality)
	if err != nil {
		return nil, err
	}

	return &Profile{
		id:              uuid.New(),
		firstName:       firstName,
		middleName:      strings.TrimSpace(middleName),
		lastName:        lastName,
		birthdate:       birthdate,
		gender:          gender,
		nationality:     strings.TrimSpace(nationality),
		nationalityCode: code,
		address:         strings.TrimSpace(address),
	}, nil
}

func ReconstructProfile(
	id uuid.UUID,
	firstName, middleName, lastName string,
	birthdate civil.Date,
	gender Gender,
	nationality, nationalityCode, address string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Profile {
	return &Profile{
		id:              id,
		firstName:       firstName,
		middleName:      middleName,
		lastName:        lastName,
		birthdate:       birthdate,
		gender:          gender,
		nationality:     nationality,
		nationalityCode: nationalityCode,
		address:         address,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		deletedAt:       deletedAt,
	}
}

func (p *Profile) ID() uuid.UUID           { return p.id }
func (p *Profile) FirstName() string       { return p.firstName }
func (p *Profile) MiddleName() string      { return p.middleName }
func (p *Profile) LastName() string        { return p.lastName }
func (p *Profile) Birthdate() civil.Date   { return p.birthdate }
func (p *Profile) Gender() Gender          { return p.gender }
func (p *Profile) Nationality() string     { return p.nationality }
func (p *Profile) NationalityCode() string { return p.nationalityCode }
func (p *Profile) Address() string         { return p.address }
func (p *Profile) CreatedAt() time.Time    { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time    { return p.updatedAt }

func (p *Profile) IsDeleted() bool { return p.deletedAt != nil }

// Update replaces the mutable profile fields, applying the same rules as
// NewProfile. The id and timestamps are untouched.
func (p *Profile) Update(
	directory *NationalityDirectory,
	firstName, middleName, lastName string,
	birthdate civil.Date,
	gender Gender,
	nationality string,
	address string,
	now time.Time,
) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" {
		return ErrEmptyFirstName
	}
	if lastName == "" {
		return ErrEmptyLastName
	}
	if !gender.IsValid() {
		return ErrInvalidGender
	}
	if !birthdate.IsZero() && birthdate.After(civil.DateOf(now)) {
		return ErrBirthdateInFuture
	}

	code, err := directory.Resolve(nationality)
	if err != nil {
		return err
	}

	p.firstName = firstName
	p.middleName = strings.TrimSpace(middleName)
	p.lastName = lastName
	p.birthdate = birthdate
	p.gender = gender
	p.nationality = strings.TrimSpace(nationality)
	p.nationalityCode = code
	p.address = strings.TrimSpace(address)
	return nil
}

func (p *Profile) FullName() string {
	if p.middleName == "" {
		return p.firstName + " " + p.lastName
	}
	return p.firstName + " " + p.middleName + " " + p.lastName
}
