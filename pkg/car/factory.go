package car

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Factory turns client requests into cars and announces each one on its writer.
type Factory struct {
	out    io.Writer
	logger *zap.Logger
}

// NewFactory wires the announcement writer and logger; nil values fall back to stdout and a no-op logger.
func NewFactory(out io.Writer, logger *zap.Logger) *Factory {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{out: out, logger: logger}
}

// Build assembles a new car from the client's choices.
// New cars always leave the factory with zero mileage; Build panics with an
// *InvariantError otherwise.
func (f *Factory) Build(color string, transmission Transmission, convertible bool) Car {
	c := Car{
		Color:        color,
		Transmission: transmission,
		Convertible:  convertible,
		Mileage:      0,
	}

	mustPassQualityControl(c)

	if _, err := fmt.Fprintln(f.out, Describe(c)); err != nil {
		f.logger.Warn("unable to announce new car", zap.Error(err))
	}
	f.logger.Debug("car built",
		zap.String("color", c.Color),
		zap.Stringer("transmission", c.Transmission),
		zap.Bool("convertible", c.Convertible),
		zap.Uint32("mileage", c.Mileage),
	)
	return c
}

// Describe renders the order line printed for every new car.
func Describe(c Car) string {
	return fmt.Sprintf("New car = %s, %s, %s", c.Color, c.Transmission, c.Roof())
}

// Order builds a car on a factory that announces to standard output.
func Order(color string, transmission Transmission, convertible bool) Car {
	return NewFactory(os.Stdout, nil).Build(color, transmission, convertible)
}

// qualityControl returns the first invariant c breaks, if any.
func qualityControl(c Car) error {
	if c.Mileage != 0 {
		return &InvariantError{Field: "mileage", Expected: uint32(0), Actual: c.Mileage}
	}
	return nil
}

func mustPassQualityControl(c Car) {
	if err := qualityControl(c); err != nil {
		panic(err)
	}
}
