package omex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simularium/omex/format"
)

// LocateManifest returns the path of the archive's manifest file.
//
// Every file whose name contains the manifest substring is a candidate. With
// exactly one candidate it wins; with several, a single candidate directly
// at the archive root wins; otherwise the lookup fails with
// AmbiguousManifestError. No candidate at all is ErrNoManifest.
//
// The winning path is recorded in the index under KeyManifest.
func (a *Archive) LocateManifest() (string, error) {
	idx, err := a.index()
	if err != nil {
		return "", err
	}

	candidates := idx.Match(a.conv.ManifestSubstring)
	switch len(candidates) {
	case 0:
		return "", ErrNoManifest
	case 1:
		idx.Set(KeyManifest, candidates[0])
		return candidates[0], nil
	}

	var atRoot []string
	for _, c := range candidates {
		if filepath.Dir(c) == idx.Root() {
			atRoot = append(atRoot, c)
		}
	}
	if len(atRoot) == 1 {
		idx.Set(KeyManifest, atRoot[0])
		return atRoot[0], nil
	}
	return "", &AmbiguousManifestError{Candidates: candidates}
}

// LocateModelFile returns the path of the simulator model file, identified
// by the conventional model file name. Absence is ErrNotFound; several files
// carrying the name is an error requiring disambiguation.
func (a *Archive) LocateModelFile() (string, error) {
	idx, err := a.index()
	if err != nil {
		return "", err
	}

	paths := idx.Lookup(a.conv.ModelFileName)
	switch len(paths) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, a.conv.ModelFileName)
	case 1:
		return paths[0], nil
	default:
		return "", fmt.Errorf("%d files named %q in archive", len(paths), a.conv.ModelFileName)
	}
}

// LocateOutputFile returns the path of the simulator's output file.
//
// A file already carrying the standardized output name wins; otherwise the
// raw-output convention applies (output suffix, name not containing the
// exclude substring). Absence is ErrNotFound.
func (a *Archive) LocateOutputFile() (string, error) {
	idx, err := a.index()
	if err != nil {
		return "", err
	}

	if paths := idx.Lookup(a.conv.OutputFileName); len(paths) > 0 {
		if len(paths) > 1 {
			return "", fmt.Errorf("%d files named %q in archive", len(paths), a.conv.OutputFileName)
		}
		idx.Set(KeyModelOutput, paths[0])
		return paths[0], nil
	}

	candidates := a.rawOutputCandidates(idx)
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: no %s output file", ErrNotFound, a.conv.OutputSuffix)
	case 1:
		idx.Set(KeyModelOutput, candidates[0])
		return candidates[0], nil
	default:
		return "", fmt.Errorf("%d candidate output files in archive: %s",
			len(candidates), strings.Join(candidates, ", "))
	}
}

// NormalizeOutputFile renames the discovered raw output file to the
// standardized output name at the archive root and returns the new path. A
// file already carrying the standardized name is returned unchanged.
func (a *Archive) NormalizeOutputFile() (string, error) {
	idx, err := a.index()
	if err != nil {
		return "", err
	}

	if paths := idx.Lookup(a.conv.OutputFileName); len(paths) == 1 {
		idx.Set(KeyModelOutput, paths[0])
		return paths[0], nil
	}

	candidates := a.rawOutputCandidates(idx)
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: no %s output file", ErrNotFound, a.conv.OutputSuffix)
	case 1:
	default:
		return "", fmt.Errorf("%d candidate output files in archive: %s",
			len(candidates), strings.Join(candidates, ", "))
	}

	target := filepath.Join(idx.Root(), a.conv.OutputFileName)
	if err := os.Rename(candidates[0], target); err != nil {
		return "", fmt.Errorf("normalize output file: %w", err)
	}
	a.log().Info("normalized output file", "from", candidates[0], "to", target)

	// The rename invalidated the snapshot.
	idx, err = a.Index()
	if err != nil {
		return "", err
	}
	idx.Set(KeyModelOutput, target)
	return target, nil
}

// rawOutputCandidates returns files matching the raw-output naming
// convention, sorted.
func (a *Archive) rawOutputCandidates(idx PathIndex) []string {
	var candidates []string
	for _, p := range idx.Match(a.conv.OutputSuffix) {
		name := filepath.Base(p)
		if !strings.HasSuffix(name, a.conv.OutputSuffix) {
			continue
		}
		if a.conv.OutputExclude != "" && strings.Contains(name, a.conv.OutputExclude) {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}

// Manifest locates, reads, and validates the archive's manifest.
func (a *Archive) Manifest() (Manifest, *Report, error) {
	path, err := a.LocateManifest()
	if err != nil {
		return nil, nil, err
	}
	return a.readManifest(path)
}

// VerifySmoldynModel reports whether any manifest entry's format identifies
// a Smoldyn model.
func (a *Archive) VerifySmoldynModel() (bool, error) {
	m, _, err := a.Manifest()
	if err != nil {
		return false, err
	}
	for _, c := range m {
		if name, ok := format.Resolve(c.Format); ok && name == format.Smoldyn {
			return true, nil
		}
	}
	return false, nil
}
