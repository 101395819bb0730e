package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	SensorTypeReal       = "real"
	SensorTypeSimulation = "simulation"
)

type Config struct {
	I2CBus     string `json:"i2c_bus"`
	I2CAddress int    `json:"i2c_address"`
	SensorType string `json:"sensor_type"`
	LogLevel   string `json:"log_level"`
}

// DefaultConfig targets the temperature sensor at 0x08 on /dev/i2c-1.
func DefaultConfig() Config {
	return Config{
		I2CBus:     "1",
		I2CAddress: 0x08,
		SensorType: SensorTypeReal,
		LogLevel:   "warn",
	}
}

// LoadFromArgs loads configuration from a JSON file (optional) and flags.
// Flags override values present in the JSON file.
func LoadFromArgs(args []string) (Config, error) {
	fs := flag.NewFlagSet("i2c-temperature", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to JSON config file")
	flagI2CBus := fs.String("i2c-bus", "", "I2C bus (e.g., '1' -> /dev/i2c-1)")
	flagI2CAddStr := fs.String("i2c-address", "", "I2C address (decimal or 0x hex)")
	flagSensorType := fs.String("sensor-type", "", "sensor type: real|simulation")
	flagLogLevel := fs.String("log-level", "", "log level: debug|info|warn|error")

	cfg := DefaultConfig()
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *cfgPath != "" {
		b, err := os.ReadFile(*cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if *flagI2CBus != "" {
		cfg.I2CBus = *flagI2CBus
	}
	if *flagI2CAddStr != "" {
		v, err := parseIntOrHex(*flagI2CAddStr)
		if err != nil {
			return cfg, fmt.Errorf("i2c-address: %w", err)
		}
		cfg.I2CAddress = v
	}
	if *flagSensorType != "" {
		cfg.SensorType = strings.ToLower(*flagSensorType)
	}
	if *flagLogLevel != "" {
		cfg.LogLevel = *flagLogLevel
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.I2CBus) == "" {
		return errors.New("i2c-bus must not be empty")
	}
	// 7-bit addressing only
	if c.I2CAddress < 0 || c.I2CAddress > 0x7F {
		return fmt.Errorf("i2c-address 0x%X out of range", c.I2CAddress)
	}
	switch c.SensorType {
	case SensorTypeReal, SensorTypeSimulation:
	default:
		return fmt.Errorf("invalid sensor type %q", c.SensorType)
	}
	return nil
}

func parseIntOrHex(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseInt(s[2:], 16, 0)
		return int(v), err
	}
	v, err := strconv.Atoi(s)
	return v, err
}
