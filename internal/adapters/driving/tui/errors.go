package tui

import "errors"

// ErrMissingProvisionService is returned when the provision service is not provided.
var ErrMissingProvisionService = errors.New("tui: provision service is required")

// ErrMissingSourceService is returned when the source service is not provided.
var ErrMissingSourceService = errors.New("tui: source service is required")

// ErrInvalidPorts is returned when no ports are given.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
