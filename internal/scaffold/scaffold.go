package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrDestinationExists is returned when the project root already
	// exists; the generator never merges into or clobbers a directory.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrEssentialFiles is returned when one or more essential files
	// (entry HTML, app manifest, service worker) could not be written.
	ErrEssentialFiles = errors.New("essential files failed to write")
)

// Failure records one file that could not be written.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes one materialization run.
type Result struct {
	Root      string
	Requested int
	Created   int
	Failures  []Failure
}

// Materialize writes plan under root on fsys. The root must not exist
// yet. Root and directory creation failures are fatal; individual file
// write failures are recorded in the Result and do not stop sibling
// writes. The returned error is non-nil only for fatal conditions or
// when an essential file is among the failures — in the latter case
// the Result is still returned alongside the error.
func Materialize(fsys afero.Fs, root string, plan *Plan) (*Result, error) {
	if _, err := fsys.Stat(root); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDestinationExists, root)
	}

	if err := fsys.Mkdir(root, 0755); err != nil {
		return nil, fmt.Errorf("creating project root %s: %w", root, err)
	}

	for _, dir := range plan.Directories() {
		abs := filepath.Join(root, filepath.FromSlash(dir))
		if err := fsys.MkdirAll(abs, 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", abs, err)
		}
	}

	res := &Result{
		Root:      root,
		Requested: len(plan.Files) + len(plan.Aux),
	}

	var essential []string
	for _, f := range plan.Files {
		if err := writeFile(fsys, root, f); err != nil {
			res.Failures = append(res.Failures, Failure{Path: f.Path, Err: err})
			if f.Essential {
				essential = append(essential, f.Path)
			}
			continue
		}
		res.Created++
	}

	// Auxiliary artifacts are best-effort, like the main pass.
	for _, f := range plan.Aux {
		if err := writeFile(fsys, root, f); err != nil {
			res.Failures = append(res.Failures, Failure{Path: f.Path, Err: err})
			continue
		}
		res.Created++
	}

	if len(essential) > 0 {
		return res, fmt.Errorf("%w: %s", ErrEssentialFiles, strings.Join(essential, ", "))
	}
	return res, nil
}

func writeFile(fsys afero.Fs, root string, f File) error {
	abs := filepath.Join(root, filepath.FromSlash(f.Path))
	if err := afero.WriteFile(fsys, abs, f.Content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", abs, err)
	}
	return nil
}
