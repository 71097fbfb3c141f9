package config

import "errors"

var ErrRequired = errors.New("required")
