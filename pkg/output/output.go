package output

import "github.com/ericogr/i2c-temperature/pkg/sensor"

// Output reports the result of a sense cycle.
type Output interface {
	Publish(sensor.Result) error
	Close() error
}

// helper constructors are in subpackages
