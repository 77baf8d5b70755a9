package wash

import "errors"

var ErrInvalidType = errors.New("invalid wash type")

// Type classifies a wash service. The two types carry independent
// quota and payout tracks.
type Type string

const (
	TypeInAndOut    Type = "in_and_out"
	TypeOutsideOnly Type = "outside_only"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeInAndOut, TypeOutsideOnly:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
