// Package ziputil packs and unpacks the zip container backing an OMEX
// archive.
package ziputil

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
)

// ErrNotZip is returned by Unpack when the source is not a valid zip file.
var ErrNotZip = errors.New("ziputil: not a zip file")

// Entry maps a file on disk to its path inside the container.
type Entry struct {
	// LocalPath is the file to read, absolute or relative to the process
	// working directory.
	LocalPath string

	// ArchivePath is the slash-separated path the file is stored under
	// inside the container.
	ArchivePath string
}

// Pack writes a new zip file at destination containing every entry, each
// stored deflated under its archive path. An existing destination is
// overwritten. A missing local file fails the whole pack; destination is not
// left half-written in that case.
func Pack(entries []Entry, destination string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(destination), ".omex-*")
	if err != nil {
		return fmt.Errorf("create archive %s: %w", destination, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	zw := zip.NewWriter(tmp)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	for _, entry := range entries {
		if err := packOne(zw, entry); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive %s: %w", destination, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("finalize archive %s: %w", destination, err)
	}
	if err := os.Rename(tmpPath, destination); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("create archive %s: %w", destination, err)
	}
	return nil
}

func packOne(zw *zip.Writer, entry Entry) error {
	f, err := os.Open(entry.LocalPath)
	if err != nil {
		return fmt.Errorf("pack %s: %w", entry.LocalPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("pack %s: %w", entry.LocalPath, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("pack %s: %w", entry.LocalPath, err)
	}
	header.Name = filepath.ToSlash(entry.ArchivePath)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("pack %s: %w", entry.ArchivePath, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("pack %s: %w", entry.ArchivePath, err)
	}
	return nil
}

// Unpack extracts every member of the zip at source into destDir, preserving
// relative paths, and returns the extracted member paths. Member paths that
// would escape destDir are rejected.
func Unpack(source, destDir string) ([]string, error) {
	zr, err := zip.OpenReader(source)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrNotZip, source)
		}
		return nil, fmt.Errorf("open archive %s: %w", source, err)
	}
	defer zr.Close()

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return nil, fmt.Errorf("create %s: %w", destDir, err)
	}

	var members []string
	for _, member := range zr.File {
		if err := unpackOne(member, destDir); err != nil {
			return nil, err
		}
		if !member.FileInfo().IsDir() {
			members = append(members, member.Name)
		}
	}
	return members, nil
}

func unpackOne(member *zip.File, destDir string) error {
	name := filepath.FromSlash(member.Name)
	if !filepath.IsLocal(name) {
		return fmt.Errorf("unpack %s: path escapes destination", member.Name)
	}
	target := filepath.Join(destDir, name)

	if member.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o750)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("unpack %s: %w", member.Name, err)
	}

	rc, err := member.Open()
	if err != nil {
		return fmt.Errorf("unpack %s: %w", member.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", member.Name, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("unpack %s: %w", member.Name, err)
	}
	return out.Close()
}

// EntriesFromDir walks dir and returns one entry per regular file, with
// archive paths relative to dir. Symbolic links are not followed.
func EntriesFromDir(dir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			LocalPath:   path,
			ArchivePath: strings.ReplaceAll(rel, string(filepath.Separator), "/"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return entries, nil
}
