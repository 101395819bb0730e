package sensor

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// I2CConn talks to the device through periph.io. Write and Read are
// separate bus transactions; the device does not expect a repeated start.
type I2CConn struct {
	dev *i2c.Dev
	bus i2c.BusCloser
}

// OpenI2C initializes the host drivers and opens the named bus.
func OpenI2C(busName string, addr uint16) (*I2CConn, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c: %w", err)
	}
	log.Debug().Str("bus", busName).Uint16("addr", addr).Msg("opened i2c bus")
	return NewI2CConn(bus, addr), nil
}

// NewI2CConn wraps an already open bus. The connection owns bus and closes
// it on Close.
func NewI2CConn(bus i2c.BusCloser, addr uint16) *I2CConn {
	return &I2CConn{dev: &i2c.Dev{Addr: addr, Bus: bus}, bus: bus}
}

func (c *I2CConn) Write(b []byte) error {
	return c.dev.Tx(b, nil)
}

// Read reads exactly n bytes. periph reports a failed transfer as an error,
// so a successful read always has count == n.
func (c *I2CConn) Read(n int) (int, []byte, error) {
	buf := make([]byte, n)
	if err := c.dev.Tx(nil, buf); err != nil {
		return 0, nil, err
	}
	return n, buf, nil
}

func (c *I2CConn) Close() error {
	if c.bus != nil {
		log.Debug().Str("bus", c.bus.String()).Msg("closing i2c bus")
		return c.bus.Close()
	}
	return nil
}

func (c *I2CConn) String() string {
	return c.dev.String()
}
