package plugin

import "errors"

// ErrHostClosed is returned when running code on a closed host.
var ErrHostClosed = errors.New("plugin host is closed")
