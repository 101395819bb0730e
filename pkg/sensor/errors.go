package sensor

import "errors"

var (
	// ErrNotEnoughBytes indicates the device answered with fewer than ReadLength bytes
	ErrNotEnoughBytes = errors.New("not enough bytes read")

	// ErrUnknownSensorType indicates the configured sensor type has no implementation
	ErrUnknownSensorType = errors.New("unknown sensor type")
)
