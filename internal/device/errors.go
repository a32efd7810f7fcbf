package device

import "errors"

// Device and manager errors.
var (
	// ErrStopTimeout indicates a device loop did not exit within the
	// join window during Stop.
	ErrStopTimeout = errors.New("device: loop did not stop in time")

	// ErrNotFound indicates no device is registered under the given id.
	ErrNotFound = errors.New("device: not found")

	// ErrNilDevice indicates a nil device was passed to the manager.
	ErrNilDevice = errors.New("device: device cannot be nil")
)
