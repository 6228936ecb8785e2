package crypto

import "errors"

var (
	// ErrHashingUnavailable is returned at construction when the digest
	// primitive required by the configured scheme is not linked into the
	// binary. It is an environment error and must abort startup.
	ErrHashingUnavailable = errors.New("password hashing primitive is unavailable")

	// ErrUnknownAlgorithm is returned for an unsupported scheme name.
	ErrUnknownAlgorithm = errors.New("unknown password hash algorithm")

	// ErrGeneratingSalt is returned when the CSPRNG read fails.
	ErrGeneratingSalt = errors.New("error generating salt")
)
