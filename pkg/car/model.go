package car

import (
	"fmt"
	"strconv"
	"strings"
)

// Transmission is the gearbox a client picks when ordering a car.
type Transmission int

// Zero is not a transmission.
const (
	Manual Transmission = iota + 1
	SemiAuto
	Automatic
)

var transmissionNames = map[Transmission]string{
	Manual:    "Manual",
	SemiAuto:  "SemiAuto",
	Automatic: "Automatic",
}

// String renders the variant name used in order lines and fixtures.
func (t Transmission) String() string {
	if name, ok := transmissionNames[t]; ok {
		return name
	}
	return "Transmission(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is one of the three known transmissions.
func (t Transmission) Valid() bool {
	_, ok := transmissionNames[t]
	return ok
}

// ParseTransmission maps a variant name back to its value, ignoring case.
func ParseTransmission(s string) (Transmission, error) {
	name := strings.TrimSpace(s)
	for t, known := range transmissionNames {
		if strings.EqualFold(known, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransmission, s)
}

// MarshalText lets encoders (YAML, JSON) write the variant name.
func (t Transmission) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTransmission, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts the variant name produced by MarshalText.
func (t *Transmission) UnmarshalText(text []byte) error {
	parsed, err := ParseTransmission(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Car is a single client order as it leaves the factory.
type Car struct {
	Color        string       `json:"color" yaml:"color"`
	Transmission Transmission `json:"transmission" yaml:"transmission"`
	Convertible  bool         `json:"convertible" yaml:"convertible"`
	Mileage      uint32       `json:"mileage" yaml:"mileage"`
}

// Roof names the body style the convertible flag stands for.
func (c Car) Roof() string {
	if c.Convertible {
		return "Convertible"
	}
	return "Hardtop"
}
