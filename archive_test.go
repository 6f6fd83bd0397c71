package omex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simularium/omex/internal/ziputil"
	"github.com/simularium/omex/manifest"
)

const (
	omexURI    = "http://identifiers.org/combine.specifications/omex"
	sedmlURI   = "http://identifiers.org/combine.specifications/sed-ml"
	smoldynURI = "http://purl.org/NET/mediatypes/text/smoldyn+plain"
)

// writeSpatialDir lays out an unpacked Smoldyn archive: model, simulation
// description, and a manifest describing them.
func writeSpatialDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.txt"), []byte("species A 100\n"), 0o640))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "simulation.sedml"), []byte("<sedML/>"), 0o640))

	m := Manifest{
		{Location: ".", Format: omexURI},
		{Location: "model.txt", Format: smoldynURI},
		{Location: "simulation.sedml", Format: sedmlURI, Master: true},
	}
	require.NoError(t, manifest.WriteFile(filepath.Join(dir, manifest.Filename), m))
	return dir
}

// packSpatialArchive packs a spatial directory into a .omex file and returns
// its path.
func packSpatialArchive(t *testing.T) string {
	t.Helper()
	dir := writeSpatialDir(t)
	entries, err := ziputil.EntriesFromDir(dir)
	require.NoError(t, err)

	archivePath := filepath.Join(t.TempDir(), "minE.omex")
	require.NoError(t, ziputil.Pack(entries, archivePath))
	return archivePath
}

func TestOpen_Directory(t *testing.T) {
	t.Parallel()

	dir := writeSpatialDir(t)
	a, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, a.Root())
	assert.Equal(t, SourceDirectory, a.Source())
}

func TestOpen_PackagedArchive(t *testing.T) {
	t.Parallel()

	archivePath := packSpatialArchive(t)
	a, err := Open(archivePath)
	require.NoError(t, err)

	assert.Equal(t, SourcePackagedFile, a.Source())
	assert.Equal(t, filepath.Join(filepath.Dir(archivePath), "minE_unpacked"), a.Root())

	p, err := a.LocateModelFile()
	require.NoError(t, err)
	assert.FileExists(t, p)
}

func TestOpen_WithWorkDir(t *testing.T) {
	t.Parallel()

	archivePath := packSpatialArchive(t)
	workDir := filepath.Join(t.TempDir(), "work")
	a, err := Open(archivePath, OpenWithWorkDir(workDir))
	require.NoError(t, err)
	assert.Equal(t, workDir, a.Root())
}

func TestOpen_BadSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "no-such-dir"))
	assert.ErrorIs(t, err, ErrOpen)

	// A .omex that is not a zip.
	bogus := filepath.Join(dir, "bogus.omex")
	require.NoError(t, os.WriteFile(bogus, []byte("not a zip"), 0o640))
	_, err = Open(bogus)
	assert.ErrorIs(t, err, ErrOpen)

	// A plain file without the archive extension.
	plain := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0o640))
	_, err = Open(plain)
	assert.ErrorIs(t, err, ErrOpen)
}

func TestIndex_Idempotent(t *testing.T) {
	t.Parallel()

	a, err := Open(writeSpatialDir(t))
	require.NoError(t, err)

	first, err := a.Index()
	require.NoError(t, err)
	second, err := a.Index()
	require.NoError(t, err)

	assert.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		assert.Equal(t, first.Lookup(name), second.Lookup(name), "key %s", name)
	}
}

func TestIndex_PicksUpNewFiles(t *testing.T) {
	t.Parallel()

	dir := writeSpatialDir(t)
	a, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "out.txt"), []byte("data"), 0o640))
	idx, err := a.Index()
	require.NoError(t, err)
	assert.Len(t, idx.Lookup("out.txt"), 1)
}

func TestManifest_Masters(t *testing.T) {
	t.Parallel()

	a, err := Open(writeSpatialDir(t))
	require.NoError(t, err)

	m, report, err := a.Manifest()
	require.NoError(t, err)
	assert.Empty(t, report.Issues)

	masters := m.Masters()
	require.Len(t, masters, 1)
	assert.Equal(t, Content{Location: "simulation.sedml", Format: sedmlURI, Master: true}, masters[0])
}

func TestVerifySmoldynModel(t *testing.T) {
	t.Parallel()

	a, err := Open(writeSpatialDir(t))
	require.NoError(t, err)
	ok, err := a.VerifySmoldynModel()
	require.NoError(t, err)
	assert.True(t, ok)

	// Without the Smoldyn entry.
	dir := t.TempDir()
	m := Manifest{{Location: ".", Format: omexURI}}
	require.NoError(t, manifest.WriteFile(filepath.Join(dir, manifest.Filename), m))
	a, err = Open(dir)
	require.NoError(t, err)
	ok, err = a.VerifySmoldynModel()
	require.NoError(t, err)
	assert.False(t, ok)
}
