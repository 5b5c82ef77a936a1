package packager

import (
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

// Packager ties archive construction, dependency resolution and
// distribution assembly together for one run. Projects are processed
// strictly sequentially; the workspace is read-only once loaded.
type Packager struct {
	archiver  *Archiver
	resolver  *Resolver
	assembler *Assembler
	reporter  ports.Reporter
}

// New creates a Packager from its collaborators.
func New(
	markers ports.MarkerStore,
	prints ports.Fingerprinter,
	scripts ports.ScriptWriter,
	logger ports.Logger,
	reporter ports.Reporter,
) *Packager {
	archiver := NewArchiver(markers, prints, logger)
	return &Packager{
		archiver:  archiver,
		resolver:  NewResolver(archiver),
		assembler: NewAssembler(scripts),
		reporter:  reporter,
	}
}

// PackArchives builds or validates the archive of every named project,
// or of every project in the workspace when no names are given. Each
// built or existing archive path is sent to the reporter.
func (pk *Packager) PackArchives(w *domain.Workspace, names []string) error {
	projects, err := pk.selectProjects(w, names)
	if err != nil {
		return err
	}

	for _, p := range projects {
		path, built, err := pk.archiver.EnsureArchive(&p)
		if err != nil {
			return err
		}
		switch {
		case path == "":
			pk.reporter.ArchiveSkipped(p.Name.String())
		case built:
			pk.reporter.ArchiveBuilt(p.Name.String(), path)
		default:
			pk.reporter.ArchiveCached(p.Name.String(), path)
		}
	}
	return nil
}

// PackDistribution resolves the full transitive archive set of the named
// project and assembles the distribution tree. The distribution root is
// sent to the reporter and returned.
func (pk *Packager) PackDistribution(w *domain.Workspace, name string, programs []domain.Program, outRoot string) (string, error) {
	p, err := w.Project(name)
	if err != nil {
		return "", err
	}

	archives, err := pk.resolver.Resolve(&p, w)
	if err != nil {
		return "", err
	}

	distDir, err := pk.assembler.Assemble(&p, programs, archives, outRoot)
	if err != nil {
		return "", err
	}

	pk.reporter.DistributionAssembled(p.Name.String(), distDir)
	return distDir, nil
}

func (pk *Packager) selectProjects(w *domain.Workspace, names []string) ([]domain.Project, error) {
	if len(names) == 0 {
		projects := make([]domain.Project, 0, w.Len())
		for p := range w.All() {
			projects = append(projects, p)
		}
		return projects, nil
	}

	projects := make([]domain.Project, 0, len(names))
	for _, name := range names {
		p, err := w.Project(name)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
