package guest

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

func NewGender(value string) (Gender, error) {
	g := Gender(value)
	if !g.IsValid() {
		return "", ErrInvalidGender
	}
	return g, nil
}

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnspecified:
		return true
	default:
		return false
	}
}
