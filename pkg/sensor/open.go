package sensor

import (
	"fmt"

	"github.com/ericogr/i2c-temperature/pkg/config"
)

// Open returns a TemperatureSensor backed by real hardware or by a simulated
// connection, depending on cfg.SensorType. The caller must Close it.
func Open(cfg config.Config) (*TemperatureSensor, error) {
	switch cfg.SensorType {
	case config.SensorTypeReal:
		conn, err := OpenI2C(cfg.I2CBus, uint16(cfg.I2CAddress))
		if err != nil {
			return nil, err
		}
		return NewTemperatureSensor(conn), nil
	case config.SensorTypeSimulation:
		return NewTemperatureSensor(NewSimulatedConn()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSensorType, cfg.SensorType)
}
