package omex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simularium/omex/format"
)

func TestRepack_OverwritesOriginalArchive(t *testing.T) {
	t.Parallel()

	archivePath := packSpatialArchive(t)
	a, err := Open(archivePath)
	require.NoError(t, err)

	// Produce and register a visualization artifact, then repack in place.
	result := filepath.Join(a.Root(), "result.simularium")
	require.NoError(t, os.WriteFile(result, []byte("{}"), 0o640))
	require.NoError(t, a.RegisterContent("result.simularium",
		RegisterWithFormatName(format.Simularium),
	))
	require.NoError(t, a.Repack(""))

	// The repacked archive opens again with everything still locatable.
	reopened, err := Open(archivePath, OpenWithWorkDir(filepath.Join(t.TempDir(), "work")))
	require.NoError(t, err)

	_, err = reopened.LocateManifest()
	require.NoError(t, err)
	_, err = reopened.LocateModelFile()
	require.NoError(t, err)

	m, _, err := reopened.Manifest()
	require.NoError(t, err)
	require.Len(t, m, 4)
	added, ok := m.Find("result.simularium")
	require.True(t, ok)
	assert.False(t, added.Master)

	idx, err := reopened.Index()
	require.NoError(t, err)
	assert.Len(t, idx.Lookup("result.simularium"), 1)
}

func TestRepack_ExplicitDestination(t *testing.T) {
	t.Parallel()

	a, err := Open(writeSpatialDir(t))
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "copy.omex")
	require.NoError(t, a.Repack(dest))

	reopened, err := Open(dest)
	require.NoError(t, err)
	_, err = reopened.LocateModelFile()
	require.NoError(t, err)
}

func TestRepack_DirectoryNeedsDestination(t *testing.T) {
	t.Parallel()

	a, err := Open(writeSpatialDir(t))
	require.NoError(t, err)
	err = a.Repack("")
	assert.ErrorIs(t, err, ErrNotPacked)
}

func TestRepack_IncludesFilesWrittenAfterIndexing(t *testing.T) {
	t.Parallel()

	archivePath := packSpatialArchive(t)
	a, err := Open(archivePath)
	require.NoError(t, err)

	// Written after Open's index snapshot; Repack walks fresh.
	require.NoError(t, os.WriteFile(filepath.Join(a.Root(), "late.csv"), []byte("t,x\n"), 0o640))
	require.NoError(t, a.Repack(""))

	reopened, err := Open(archivePath, OpenWithWorkDir(filepath.Join(t.TempDir(), "work")))
	require.NoError(t, err)
	idx, err := reopened.Index()
	require.NoError(t, err)
	assert.Len(t, idx.Lookup("late.csv"), 1)
}
