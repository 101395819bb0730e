package sensor

import (
	"fmt"
	"time"
)

const (
	// CommandReadTemperature requests the current temperature register.
	CommandReadTemperature = 0x01
	// ReadLength is the size of the temperature payload, low byte first.
	ReadLength = 2
)

// Conn is the I2C access layer used by TemperatureSensor.
//
// Read returns the bytes actually received; a short read is reported through
// count, not err. err is reserved for transport failures.
type Conn interface {
	Write(b []byte) error
	Read(n int) (count int, data []byte, err error)
	Close() error
}

type Reading struct {
	Raw       uint16    `json:"raw"`
	Celsius   float64   `json:"celsius"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// Reason tells a successful Result apart from a failed one.
type Reason int

const (
	ReasonOK Reason = iota
	ReasonShortRead
)

func (r Reason) String() string {
	switch r {
	case ReasonOK:
		return "ok"
	case ReasonShortRead:
		return "short-read"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Err returns the sentinel error for r, nil for ReasonOK.
func (r Reason) Err() error {
	switch r {
	case ReasonOK:
		return nil
	case ReasonShortRead:
		return ErrNotEnoughBytes
	}
	return fmt.Errorf("unknown reason %d", int(r))
}

// Result is the outcome of one sense cycle. Reading is only meaningful when
// OK returns true.
type Result struct {
	Reading Reading `json:"reading"`
	Reason  Reason  `json:"reason"`
}

func (r Result) OK() bool { return r.Reason == ReasonOK }

// String renders the single line reported to the user.
func (r Result) String() string {
	if r.OK() {
		return formatCelsius(r.Reading.Celsius)
	}
	return "Error, " + r.Reason.Err().Error()
}

// TemperatureSensor performs the write-then-read cycle against one device.
type TemperatureSensor struct {
	conn Conn
}

func NewTemperatureSensor(conn Conn) *TemperatureSensor {
	return &TemperatureSensor{conn: conn}
}

// Read issues the temperature command and decodes the reply. Transport
// failures are returned as errors; a short reply is a non-OK Result.
func (s *TemperatureSensor) Read() (Result, error) {
	if err := s.conn.Write([]byte{CommandReadTemperature}); err != nil {
		return Result{}, fmt.Errorf("write command: %w", err)
	}
	count, data, err := s.conn.Read(ReadLength)
	if err != nil {
		return Result{}, fmt.Errorf("read temperature: %w", err)
	}
	res := Decode(count, data)
	if res.OK() {
		res.Reading.Timestamp = time.Now()
	}
	return res, nil
}

func (s *TemperatureSensor) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
