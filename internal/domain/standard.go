package domain

import "fmt"

// FireStandard selects the fire heat-input and wetted-area rules.
type FireStandard int

const (
	API521 FireStandard = iota
	NFPA30
)

func (s FireStandard) String() string {
	switch s {
	case API521:
		return "API 521"
	case NFPA30:
		return "NFPA 30"
	}
	return fmt.Sprintf("FireStandard(%d)", int(s))
}

func (s FireStandard) MarshalText() ([]byte, error) {
	switch s {
	case API521:
		return []byte("api521"), nil
	case NFPA30:
		return []byte("nfpa30"), nil
	}
	return nil, fmt.Errorf("unknown fire standard %d", int(s))
}

func (s *FireStandard) UnmarshalText(b []byte) error {
	switch string(b) {
	case "api521", "API 521", "API521":
		*s = API521
	case "nfpa30", "NFPA 30", "NFPA30":
		*s = NFPA30
	default:
		return fmt.Errorf("unknown fire standard %q", string(b))
	}
	return nil
}
