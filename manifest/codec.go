package manifest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"

	"github.com/simularium/omex/format"
)

// Namespace is the XML namespace of the OMEX manifest document.
const Namespace = "http://identifiers.org/combine.specifications/omex-manifest"

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Severity classifies a validation issue.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is a single validation problem found while reading a manifest.
type Issue struct {
	Severity Severity
	// Location is the entry the issue concerns, empty for manifest-level
	// issues.
	Location string
	Message  string
}

func (i Issue) String() string {
	if i.Location == "" {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Location, i.Message)
}

// Report collects the validation issues from one read. Per-entry problems
// never abort a read; callers inspect the report and decide.
type Report struct {
	Issues []Issue

	// Digest is the sha256 digest of the raw manifest bytes, usable as a
	// write precondition. Only set by ReadFile.
	Digest digest.Digest
}

// Errors returns the error-severity issues.
func (r *Report) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns the warning-severity issues.
func (r *Report) Warnings() []Issue { return r.filter(SeverityWarning) }

// HasErrors reports whether any issue is an error.
func (r *Report) HasErrors() bool { return len(r.Errors()) > 0 }

func (r *Report) filter(s Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

func (r *Report) add(s Severity, location, msg string) {
	r.Issues = append(r.Issues, Issue{Severity: s, Location: location, Message: msg})
}

// readConfig holds configuration for manifest reads.
type readConfig struct {
	strict bool
}

// ReadOption configures manifest reads.
type ReadOption func(*readConfig)

// ReadWithStrict promotes unresolved-format issues from warnings to errors.
func ReadWithStrict() ReadOption {
	return func(cfg *readConfig) {
		cfg.strict = true
	}
}

// omexManifest mirrors the manifest XML document.
type omexManifest struct {
	XMLName  xml.Name      `xml:"omexManifest"`
	Xmlns    string        `xml:"xmlns,attr"`
	Contents []omexContent `xml:"content"`
}

type omexContent struct {
	Location string `xml:"location,attr"`
	Format   string `xml:"format,attr,omitempty"`
	Master   bool   `xml:"master,attr,omitempty"`
}

// Read parses a manifest document and validates every entry's format against
// the format registry.
//
// Structural problems abort the read with ErrMalformed (wrapped with
// detail). Per-entry problems are collected into the returned report
// alongside a best-effort manifest; by default an unresolved format is a
// warning, promoted to an error under ReadWithStrict.
func Read(r io.Reader, opts ...ReadOption) (Manifest, *Report, error) {
	cfg := readConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read manifest: %w", err)
	}

	var doc omexManifest
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	report := &Report{}
	if doc.Xmlns != "" && doc.Xmlns != Namespace {
		report.add(SeverityWarning, "", fmt.Sprintf("unexpected manifest namespace %q", doc.Xmlns))
	}

	formatSeverity := SeverityWarning
	if cfg.strict {
		formatSeverity = SeverityError
	}

	m := make(Manifest, 0, len(doc.Contents))
	selfReferenced := false
	masters := 0
	for _, c := range doc.Contents {
		if c.Location == "" {
			report.add(SeverityError, "", "content entry without a location")
			continue
		}
		if c.Format == "" {
			report.add(formatSeverity, c.Location, "entry has no format identifier")
		} else if name, ok := format.Resolve(c.Format); !ok {
			report.add(formatSeverity, c.Location, fmt.Sprintf("unresolved format identifier %q", c.Format))
		} else if c.Location == RootLocation {
			selfReferenced = true
			if name != format.OMEX {
				report.add(SeverityError, c.Location,
					fmt.Sprintf("archive self-reference must use the OMEX format, found %q", c.Format))
			}
		}
		if c.Master {
			masters++
		}
		m = append(m, Content{Location: c.Location, Format: c.Format, Master: c.Master})
	}

	if !selfReferenced {
		report.add(SeverityWarning, "", "manifest does not reference its parent archive")
	}
	if masters > 1 {
		report.add(SeverityWarning, "", fmt.Sprintf("%d entries are marked master", masters))
	}

	return m, report, nil
}

// ReadFile reads and validates the manifest at path. The returned report
// carries the digest of the file's bytes for use as a write precondition.
func ReadFile(path string, opts ...ReadOption) (Manifest, *Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	m, report, err := Read(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, nil, err
	}
	report.Digest = digest.FromBytes(data)
	return m, report, nil
}

// Write serializes the manifest in entry order.
func Write(w io.Writer, m Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Encode renders the manifest document to bytes.
func Encode(m Manifest) ([]byte, error) {
	doc := omexManifest{Xmlns: Namespace, Contents: make([]omexContent, 0, len(m))}
	for _, c := range m {
		doc.Contents = append(doc.Contents, omexContent{
			Location: c.Location,
			Format:   c.Format,
			Master:   c.Master,
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// writeConfig holds configuration for manifest writes.
type writeConfig struct {
	baseDigest digest.Digest
}

// WriteOption configures manifest writes.
type WriteOption func(*writeConfig)

// WriteWithBaseDigest makes WriteFile fail with ErrModified unless the
// current file content still matches d. Use the digest from a prior
// ReadFile to detect a concurrent writer between read and write.
func WriteWithBaseDigest(d digest.Digest) WriteOption {
	return func(cfg *writeConfig) {
		cfg.baseDigest = d
	}
}

// WriteFile serializes the manifest to path.
//
// The write is atomic (temp file + rename), so a failure leaves any previous
// file intact.
func WriteFile(path string, m Manifest, opts ...WriteOption) error {
	cfg := writeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := Encode(m)
	if err != nil {
		return err
	}

	if cfg.baseDigest != "" {
		current, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read manifest %s: %w", path, err)
		}
		if err == nil && digest.FromBytes(current) != cfg.baseDigest {
			return fmt.Errorf("%w: %s", ErrModified, path)
		}
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file then renames to target,
// ensuring atomic replacement of the target file.
func writeFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".manifest-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
