package sensor

import (
	"strconv"
	"strings"
)

// Decode builds a Result from the bytes returned by the device. The payload
// is little-endian: data[0] is the low byte and data[1] the high byte. The
// byte order comes from the device firmware and has not been checked against
// a datasheet.
func Decode(count int, data []byte) Result {
	if count < ReadLength || len(data) < ReadLength {
		return Result{Reason: ReasonShortRead}
	}
	raw := uint16(data[1])<<8 | uint16(data[0])
	return Result{Reading: Reading{Raw: raw, Celsius: float64(raw) / 10.0, Count: count}}
}

// formatCelsius prints the shortest decimal that round-trips, keeping at
// least one fractional digit ("10.0", not "10").
func formatCelsius(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
