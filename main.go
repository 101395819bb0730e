package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ericogr/i2c-temperature/pkg/config"
	"github.com/ericogr/i2c-temperature/pkg/output"
	"github.com/ericogr/i2c-temperature/pkg/output/console"
	"github.com/ericogr/i2c-temperature/pkg/sensor"
)

// replaced in tests
var openSensor = sensor.Open

func main() {
	cfg, err := config.LoadFromArgs(os.Args[1:])
	initLogger(cfg.LogLevel)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := run(cfg, console.NewConsole()); err != nil {
		log.Fatal().Err(err).Str("bus", cfg.I2CBus).Msgf("temperature read failed (addr 0x%02X)", cfg.I2CAddress)
	}
}

// initLogger sends diagnostics to stderr; stdout is reserved for the result.
func initLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// run performs one sense-and-report cycle. The sensor is closed on every
// path, including transport failures. A short read is reported on out and is
// not an error.
func run(cfg config.Config, out output.Output) error {
	s, err := openSensor(cfg)
	if err != nil {
		return fmt.Errorf("open sensor: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close sensor")
		}
	}()
	defer out.Close()

	log.Debug().Str("bus", cfg.I2CBus).Int("addr", cfg.I2CAddress).Str("sensor_type", cfg.SensorType).Msg("reading temperature")

	res, err := s.Read()
	if err != nil {
		return err
	}
	if !res.OK() {
		log.Debug().Stringer("reason", res.Reason).Msg("device returned a short reply")
	}
	return out.Publish(res)
}
