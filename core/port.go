package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	PortEnv     = "PORT"
	DefaultPort = 5000
)

// ResolvePort interprets the value of the PORT variable. An empty value
// selects DefaultPort.
func ResolvePort(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPort, "%s=%q is not an integer", PortEnv, value)
	}
	if port < 1 || port > 65535 {
		return 0, errors.Wrapf(ErrInvalidPort, "%s=%d is out of range", PortEnv, port)
	}
	return port, nil
}

func PortFromEnv(getenv func(string) string) (int, error) {
	return ResolvePort(getenv(PortEnv))
}
