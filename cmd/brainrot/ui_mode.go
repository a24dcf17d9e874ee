package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// switchMode is the auto|on|off value shared by --ui and --color.
type switchMode uint8

const (
	switchAuto switchMode = iota
	switchOn
	switchOff
)

var switchNames = []string{"auto", "on", "off"}

func parseSwitch(flag, value string) (switchMode, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return switchAuto, nil
	}
	i := slices.Index(switchNames, v)
	if i < 0 {
		return switchAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
	return switchMode(i), nil
}

// on resolves auto against stderr: прогресс и цвет идут туда, stdout под вывод.
func (m switchMode) on() bool {
	if m == switchAuto {
		return isTerminal(os.Stderr)
	}
	return m == switchOn
}

func readColorMode(value string) (bool, error) {
	m, err := parseSwitch("color", value)
	return m.on() && err == nil, err
}
