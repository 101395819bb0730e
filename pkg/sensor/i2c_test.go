package sensor

import (
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

const addr uint16 = 0x08

func TestI2CConnReadTemperature(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// command and reply are separate transactions
			{Addr: addr, W: []byte{CommandReadTemperature}},
			{Addr: addr, R: []byte{0xEB, 0x00}},
		},
		DontPanic: true,
	}
	s := NewTemperatureSensor(NewI2CConn(bus, addr))

	res, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !res.OK() {
		t.Fatalf("unexpected reason %s", res.Reason)
	}
	if res.Reading.Raw != 235 || res.String() != "23.5" {
		t.Fatalf("got raw=%d %q; want raw=235 \"23.5\"", res.Reading.Raw, res.String())
	}
	if res.Reading.Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}
	// Close fails if the playback still holds unplayed ops.
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestI2CConnWriteMismatch(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: addr, W: []byte{0x02}},
		},
		DontPanic: true,
	}
	s := NewTemperatureSensor(NewI2CConn(bus, addr))
	if _, err := s.Read(); err == nil {
		t.Fatalf("expected error on unexpected command byte")
	}
}

func TestI2CConnWrongAddress(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x48, W: []byte{CommandReadTemperature}},
		},
		DontPanic: true,
	}
	c := NewI2CConn(bus, addr)
	if err := c.Write([]byte{CommandReadTemperature}); err == nil {
		t.Fatalf("expected error writing to the wrong address")
	}
}

func TestI2CConnRead(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: addr, R: []byte{0xFF, 0xFF}}},
		DontPanic: true,
	}
	c := NewI2CConn(bus, addr)
	n, data, err := c.Read(ReadLength)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 2 || len(data) != 2 || data[0] != 0xFF || data[1] != 0xFF {
		t.Fatalf("got n=%d data=% X", n, data)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
