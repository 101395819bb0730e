package console

import (
	"fmt"
	"io"
	"os"

	"github.com/ericogr/i2c-temperature/pkg/output"
	"github.com/ericogr/i2c-temperature/pkg/sensor"
)

type ConsoleOutput struct {
	w io.Writer
}

func NewConsole() output.Output { return &ConsoleOutput{w: os.Stdout} }

func NewConsoleWriter(w io.Writer) output.Output { return &ConsoleOutput{w: w} }

// Publish writes exactly one line: the reading or the error message.
func (c *ConsoleOutput) Publish(res sensor.Result) error {
	_, err := fmt.Fprintln(c.w, res.String())
	return err
}

func (c *ConsoleOutput) Close() error { return nil }
