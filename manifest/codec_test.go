package manifest

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	m := spatialManifest()
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, WriteFile(path, m))

	got, report, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
	assert.True(t, m.Equal(got))
	// Insertion order survives serialization.
	assert.Equal(t, []Content(m), []Content(got))
}

func TestRoundTrip_EmptyFormat(t *testing.T) {
	t.Parallel()

	m := append(spatialManifest(), Content{Location: "result.simularium"})
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, WriteFile(path, m))

	got, report, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Empty(t, got[3].Format)
	assert.False(t, got[3].Master)
	// The formatless entry is reported, not dropped.
	require.Len(t, report.Warnings(), 1)
	assert.Equal(t, "result.simularium", report.Warnings()[0].Location)
}

func TestEncode_Document(t *testing.T) {
	t.Parallel()

	data, err := Encode(spatialManifest())
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, s, `<omexManifest xmlns="`+Namespace+`">`)
	assert.Contains(t, s, `location="simulation.sedml"`)
	assert.Contains(t, s, `master="true"`)
	// Default master and empty format attributes are omitted.
	assert.NotContains(t, s, `master="false"`)
	assert.NotContains(t, s, `format=""`)
}

func TestRead_ForeignManifest(t *testing.T) {
	t.Parallel()

	// As written by another OMEX tool: https scheme, no-hyphen sed-ml
	// spelling, master given as an explicit false.
	doc := `<?xml version="1.0" encoding="utf-8"?>
<omexManifest xmlns="http://identifiers.org/combine.specifications/omex-manifest">
  <content location="." format="https://identifiers.org/combine.specifications/omex" master="false"/>
  <content location="./sim.sedml" format="https://identifiers.org/combine.specifications/sedml" master="true"/>
</omexManifest>`

	m, report, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
	require.Len(t, m, 2)
	assert.True(t, m[1].Master)
}

func TestRead_UnresolvedFormatIsWarning(t *testing.T) {
	t.Parallel()

	doc := `<omexManifest xmlns="` + Namespace + `">
  <content location="." format="` + omexURI + `"/>
  <content location="data.bin" format="http://example.com/mystery"/>
  <content location="model.txt" format="` + smoldynURI + `"/>
</omexManifest>`

	m, report, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	// The bad entry does not block the good ones.
	require.Len(t, m, 3)
	assert.False(t, report.HasErrors())
	require.Len(t, report.Warnings(), 1)
	assert.Equal(t, "data.bin", report.Warnings()[0].Location)
}

func TestRead_StrictPromotesToError(t *testing.T) {
	t.Parallel()

	doc := `<omexManifest xmlns="` + Namespace + `">
  <content location="." format="` + omexURI + `"/>
  <content location="data.bin" format="http://example.com/mystery"/>
</omexManifest>`

	m, report, err := Read(strings.NewReader(doc), ReadWithStrict())
	require.NoError(t, err)
	require.Len(t, m, 2)
	assert.True(t, report.HasErrors())
	require.Len(t, report.Errors(), 1)
	assert.Equal(t, "data.bin", report.Errors()[0].Location)
}

func TestRead_MissingSelfReferenceIsWarning(t *testing.T) {
	t.Parallel()

	doc := `<omexManifest xmlns="` + Namespace + `">
  <content location="model.txt" format="` + smoldynURI + `"/>
</omexManifest>`

	_, report, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.False(t, report.HasErrors())
	require.Len(t, report.Warnings(), 1)
	assert.Contains(t, report.Warnings()[0].Message, "parent archive")
}

func TestRead_SelfReferenceWithWrongFormat(t *testing.T) {
	t.Parallel()

	doc := `<omexManifest xmlns="` + Namespace + `">
  <content location="." format="` + smoldynURI + `"/>
</omexManifest>`

	_, report, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.True(t, report.HasErrors())
	assert.Contains(t, report.Errors()[0].Message, "OMEX format")
}

func TestRead_MultipleMastersIsWarning(t *testing.T) {
	t.Parallel()

	doc := `<omexManifest xmlns="` + Namespace + `">
  <content location="." format="` + omexURI + `"/>
  <content location="a.sedml" format="` + sedmlURI + `" master="true"/>
  <content location="b.sedml" format="` + sedmlURI + `" master="true"/>
</omexManifest>`

	m, report, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, m.Masters(), 2)
	found := false
	for _, w := range report.Warnings() {
		if strings.Contains(w.Message, "master") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRead_Malformed(t *testing.T) {
	t.Parallel()

	_, _, err := Read(strings.NewReader("not xml at all <"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteFile_DigestPrecondition(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, WriteFile(path, spatialManifest()))

	m, report, err := ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, report.Digest)

	// An out-of-band writer sneaks in between read and write.
	interloper := append(spatialManifest(), Content{Location: "other.csv"})
	require.NoError(t, WriteFile(path, interloper))

	stale := append(m, Content{Location: "result.simularium"})
	err = WriteFile(path, stale, WriteWithBaseDigest(report.Digest))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModified)

	// The interloper's write is still intact.
	got, _, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, interloper.Equal(got))
}

func TestWriteFile_DigestPreconditionHolds(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, WriteFile(path, spatialManifest()))

	m, report, err := ReadFile(path)
	require.NoError(t, err)

	next := append(m, Content{Location: "result.simularium"})
	require.NoError(t, WriteFile(path, next, WriteWithBaseDigest(report.Digest)))

	got, _, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, next.Equal(got))
}

func TestWriteFile_NoTempFileLeftBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	require.NoError(t, WriteFile(path, spatialManifest()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Filename, entries[0].Name())
}

func TestWrite_Writer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, spatialManifest()))

	got, _, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, spatialManifest().Equal(got))
}

func TestReportDigest_TracksContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, WriteFile(path, spatialManifest()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	_, report, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, digest.FromBytes(data), report.Digest)
}
