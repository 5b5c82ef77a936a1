package ports

// Fingerprinter defines the interface for computing content fingerprints.
//
//go:generate mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// FingerprintDir computes a stable fingerprint over a directory tree.
	// Two trees with identical relative paths and file contents produce
	// the same fingerprint.
	FingerprintDir(dir string) (string, error)
}
