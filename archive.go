package omex

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/simularium/omex/internal/pathindex"
	"github.com/simularium/omex/internal/ziputil"
)

// Ext is the file extension of a packaged OMEX archive.
const Ext = ".omex"

// Source identifies what an Archive was opened from.
type Source uint8

const (
	// SourceDirectory means the archive root was supplied as an unpacked
	// directory.
	SourceDirectory Source = iota

	// SourcePackagedFile means the archive was unpacked from a .omex file
	// into a working directory.
	SourcePackagedFile
)

// Archive is a COMBINE/OMEX archive normalized to a working directory.
//
// When opened from a packaged file the archive is unpacked once at open
// time; every subsequent operation runs against the working directory, and
// Repack zips it back into a file on explicit request.
type Archive struct {
	root       string
	source     Source
	packedPath string
	conv       Conventions
	strict     bool
	logger     *slog.Logger

	idx pathindex.Index
	sf  singleflight.Group
}

// openConfig holds configuration for Open.
type openConfig struct {
	workDir string
	conv    Conventions
	strict  bool
	logger  *slog.Logger
}

// OpenOption configures Open.
type OpenOption func(*openConfig)

// OpenWithWorkDir sets the directory a packaged archive is unpacked into.
// The default is a sibling directory named after the archive file with an
// "_unpacked" suffix. Ignored when opening a directory.
func OpenWithWorkDir(dir string) OpenOption {
	return func(cfg *openConfig) {
		cfg.workDir = dir
	}
}

// OpenWithConventions sets the naming conventions used for file discovery.
// The default is SmoldynConventions.
func OpenWithConventions(conv Conventions) OpenOption {
	return func(cfg *openConfig) {
		cfg.conv = conv
	}
}

// OpenWithStrictManifest promotes unresolved-format manifest issues from
// warnings to errors on every manifest read the archive performs.
func OpenWithStrictManifest() OpenOption {
	return func(cfg *openConfig) {
		cfg.strict = true
	}
}

// OpenWithLogger sets the logger for archive operations. Logging is
// discarded when unset.
func OpenWithLogger(logger *slog.Logger) OpenOption {
	return func(cfg *openConfig) {
		cfg.logger = logger
	}
}

// Open normalizes path to a working directory and indexes its files.
//
// A path ending in Ext is unpacked into the working directory; any other
// existing directory is used as the root directly. Anything else fails with
// ErrOpen, as does an unpacking failure.
func Open(path string, opts ...OpenOption) (*Archive, error) {
	cfg := openConfig{conv: SmoldynConventions()}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Archive{
		conv:   cfg.conv,
		strict: cfg.strict,
		logger: cfg.logger,
	}

	switch {
	case strings.HasSuffix(path, Ext):
		workDir := cfg.workDir
		if workDir == "" {
			workDir = strings.TrimSuffix(path, Ext) + "_unpacked"
		}
		members, err := ziputil.Unpack(path, workDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOpen, err)
		}
		a.root = workDir
		a.source = SourcePackagedFile
		a.packedPath = path
		a.log().Info("unpacked archive", "archive", path, "workdir", workDir, "members", len(members))
	default:
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is neither a packaged archive nor a directory", ErrOpen, path)
		}
		a.root = path
		a.source = SourceDirectory
	}

	if _, err := a.Index(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return a, nil
}

// Root returns the working directory the archive operates against.
func (a *Archive) Root() string { return a.root }

// Source reports whether the archive was opened from a directory or a
// packaged file.
func (a *Archive) Source() Source { return a.source }

// Conventions returns the naming conventions in effect.
func (a *Archive) Conventions() Conventions { return a.conv }

// Index rebuilds the path index from a fresh recursive walk of the working
// directory and returns it.
//
// The index is a snapshot; re-call Index after any out-of-band file mutation
// (such as the simulator writing its result file) before relying on path
// lookups. Concurrent calls are collapsed into a single rebuild.
func (a *Archive) Index() (PathIndex, error) {
	v, err, _ := a.sf.Do("index", func() (any, error) {
		idx, err := pathindex.Build(a.root)
		if err != nil {
			return nil, err
		}
		a.idx = idx
		return idx, nil
	})
	if err != nil {
		return nil, fmt.Errorf("index archive: %w", err)
	}
	return v.(pathindex.Index), nil
}

// index returns the current snapshot, building it if needed.
func (a *Archive) index() (pathindex.Index, error) {
	if a.idx != nil {
		return a.idx, nil
	}
	return a.Index()
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}
