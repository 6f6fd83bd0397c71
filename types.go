package omex

import (
	"github.com/simularium/omex/internal/pathindex"
	"github.com/simularium/omex/manifest"
)

// --- Re-exports from manifest ---

// Manifest is an ordered sequence of content entries.
type Manifest = manifest.Manifest

// Content is one entry of a manifest.
type Content = manifest.Content

// Report collects the validation issues from one manifest read.
type Report = manifest.Report

// Issue is a single validation problem found while reading a manifest.
type Issue = manifest.Issue

// PathIndex maps a file name or synthetic key to the absolute paths it
// resolves to within the working directory.
type PathIndex = pathindex.Index

// Synthetic index keys recorded by location operations.
const (
	// KeyRoot resolves to the working directory.
	KeyRoot = pathindex.KeyRoot

	// KeyManifest resolves to the located manifest file.
	KeyManifest = "manifest"

	// KeyModelOutput resolves to the standardized model output file.
	KeyModelOutput = "model_output_file"
)
