package ports

// Reporter is the sink for user-visible packaging results. The caller
// decides whether results go to the console, a log, or a progress tape.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// ArchiveBuilt reports that a project's archive was (re)built at path.
	ArchiveBuilt(project string, path string)

	// ArchiveCached reports that a project's existing archive is current.
	ArchiveCached(project string, path string)

	// ArchiveSkipped reports that a project has no compiled output yet
	// and no previous archive.
	ArchiveSkipped(project string)

	// DistributionAssembled reports the root of an assembled distribution.
	DistributionAssembled(project string, path string)
}
