package publisher

import "errors"

var (
	// ErrConfigurationMissing is returned when a required setting is absent or empty.
	ErrConfigurationMissing = errors.New("configuration missing")

	// ErrMalformedIndexFile is returned when an index file is not an array of objects.
	ErrMalformedIndexFile = errors.New("malformed index file")

	// ErrRemoteFailure is returned when the search service rejects a bulk upload.
	ErrRemoteFailure = errors.New("remote failure")
)
