package omex

import (
	"fmt"

	"github.com/simularium/omex/format"
	"github.com/simularium/omex/manifest"
)

// registerConfig holds configuration for RegisterContent.
type registerConfig struct {
	formatURI  string
	formatName format.Format
	master     bool
}

// RegisterOption configures RegisterContent.
type RegisterOption func(*registerConfig)

// RegisterWithFormat sets the new entry's format identifier URI. Without a
// format option the entry is registered with an unknown format.
func RegisterWithFormat(uri string) RegisterOption {
	return func(cfg *registerConfig) {
		cfg.formatURI = uri
	}
}

// RegisterWithFormatName sets the new entry's format by symbolic name,
// resolved to its canonical URI through the format registry.
func RegisterWithFormatName(f format.Format) RegisterOption {
	return func(cfg *registerConfig) {
		cfg.formatName = f
	}
}

// RegisterAsMaster marks the new entry as the archive's master content.
func RegisterAsMaster() RegisterOption {
	return func(cfg *registerConfig) {
		cfg.master = true
	}
}

// RegisterContent appends a new entry to the manifest and persists it.
//
// The manifest is read, appended to, and rewritten whole; existing entries
// and their order are preserved. A manifest whose read collects
// error-severity validation issues is left untouched, since the rewrite
// could not preserve what the codec failed to keep. The write carries a
// digest precondition
// from the read, so a concurrent writer between the two fails the
// registration with ErrManifestModified rather than losing either update.
func (a *Archive) RegisterContent(location string, opts ...RegisterOption) error {
	cfg := registerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	uri := cfg.formatURI
	if cfg.formatName != "" {
		canonical, ok := format.CanonicalURI(cfg.formatName)
		if !ok {
			return fmt.Errorf("omex: unknown format name %q", cfg.formatName)
		}
		uri = canonical
	}

	path, err := a.LocateManifest()
	if err != nil {
		return err
	}
	m, report, err := a.readManifest(path)
	if err != nil {
		return err
	}
	// A read that collected errors yielded a lossy manifest (entries the
	// codec could not keep); rewriting it would drop them from disk.
	if report.HasErrors() {
		return fmt.Errorf("omex: manifest %s failed validation: %s", path, report.Errors()[0])
	}
	if warnings := report.Warnings(); len(warnings) > 0 {
		a.log().Warn("manifest validation warnings", "manifest", path, "count", len(warnings), "first", warnings[0].String())
	}

	m = append(m, manifest.Content{Location: location, Format: uri, Master: cfg.master})
	if err := manifest.WriteFile(path, m, manifest.WriteWithBaseDigest(report.Digest)); err != nil {
		return err
	}
	a.log().Info("registered content", "location", location, "format", uri, "master", cfg.master)
	return nil
}

// readManifest reads the manifest at path under the archive's validation
// settings.
func (a *Archive) readManifest(path string) (Manifest, *Report, error) {
	var opts []manifest.ReadOption
	if a.strict {
		opts = append(opts, manifest.ReadWithStrict())
	}
	return manifest.ReadFile(path, opts...)
}
