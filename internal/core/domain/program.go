package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// Program pairs a launcher name with the fully qualified class it starts.
// Programs exist only in distribution mode, where each one becomes a
// generated launcher script.
type Program struct {
	Name      string
	MainClass string
}

// ParseProgram parses a single "name:fully.qualified.MainClass" descriptor.
func ParseProgram(descriptor string) (Program, error) {
	name, mainClass, ok := strings.Cut(descriptor, ":")
	name = strings.TrimSpace(name)
	mainClass = strings.TrimSpace(mainClass)
	if !ok || name == "" || mainClass == "" {
		err := zerr.With(zerr.Wrap(ErrInvalidProgram, "failed to parse program descriptor"), "descriptor", descriptor)
		return Program{}, zerr.With(err, "expected", "name:fully.qualified.MainClass")
	}
	return Program{Name: name, MainClass: mainClass}, nil
}

// ParsePrograms parses all descriptors, accumulating errors instead of
// stopping at the first malformed one.
func ParsePrograms(descriptors []string) ([]Program, error) {
	programs := make([]Program, 0, len(descriptors))
	var errs error
	for _, d := range descriptors {
		p, err := ParseProgram(d)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		programs = append(programs, p)
	}
	if errs != nil {
		return nil, errs
	}
	return programs, nil
}
