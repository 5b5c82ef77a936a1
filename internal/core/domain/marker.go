package domain

// CacheMarker records which compiled-classes directory produced the
// current archive of a project. Comparing it against the directory the
// compiler most recently populated detects a new compile without hashing
// the archive itself. The fingerprint additionally catches in-place
// mutation of the same directory; it is empty for markers written by
// older versions that stored only the path.
type CacheMarker struct {
	ClassesDir  string
	Fingerprint string
}
