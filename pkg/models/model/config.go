package model

import (
	"fmt"
	"strings"
)

// Config is an ON/OFF command line switch.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"on":   On,
	"1":    On,
	"true": On,
	"yes":  On,

	"off":   Off,
	"0":     Off,
	"false": Off,
	"no":    Off,
}

func ParseConfig(s string) (Config, error) {
	c, ok := configName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Off, fmt.Errorf("unknown switch value %q, want ON or OFF", s)
	}
	return c, nil
}

// NewConfig parses s, treating anything unknown as Off.
func NewConfig(s string) Config {
	c, _ := ParseConfig(s)
	return c
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}
