package app

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"carfactory/pkg/car"
)

//go:embed requests.yaml
var defaultRequests []byte

// Request is what a client asks the factory to build.
type Request struct {
	Color        string           `yaml:"color"`
	Transmission car.Transmission `yaml:"transmission"`
	Convertible  bool             `yaml:"convertible"`
}

// ExpectationError reports a built car that does not match the client's request.
type ExpectationError struct {
	Index    int
	Field    string
	Expected any
	Actual   any
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("client request %d: %s = %v, want %v", e.Index+1, e.Field, e.Actual, e.Expected)
}

// IsExpectation distinguishes mismatched orders from infrastructure failures.
func IsExpectation(err error) bool {
	var exp *ExpectationError
	return errors.As(err, &exp)
}

// parseRequests decodes a YAML list of client requests.
func parseRequests(data []byte) ([]Request, error) {
	var requests []Request
	if err := yaml.Unmarshal(data, &requests); err != nil {
		return nil, fmt.Errorf("unable to decode client requests: %w", err)
	}
	return requests, nil
}

// verify checks that c carries exactly what request i asked for.
func verify(i int, req Request, c car.Car) error {
	if c.Color != req.Color {
		return &ExpectationError{Index: i, Field: "color", Expected: req.Color, Actual: c.Color}
	}
	if c.Transmission != req.Transmission {
		return &ExpectationError{Index: i, Field: "transmission", Expected: req.Transmission, Actual: c.Transmission}
	}
	if c.Convertible != req.Convertible {
		return &ExpectationError{Index: i, Field: "convertible", Expected: req.Convertible, Actual: c.Convertible}
	}
	return nil
}
