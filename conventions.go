package omex

// Conventions carries the simulator-specific naming conventions an Archive
// uses to discover files. The lookups are heuristics over file names, not
// format-verified: a file matching the convention is assumed correct.
//
// Each simulator integration supplies its own Conventions value instead of
// subclassing the archive.
type Conventions struct {
	// ModelFileName is the conventional name of the simulator's model file.
	ModelFileName string

	// OutputFileName is the standardized name raw simulator output is
	// normalized to.
	OutputFileName string

	// OutputSuffix is the file suffix raw simulator output carries.
	OutputSuffix string

	// OutputExclude excludes files whose name contains this substring from
	// raw-output discovery, keeping the model file out of the match set.
	OutputExclude string

	// SimulariumFileName is the default name for a generated visualization
	// artifact.
	SimulariumFileName string

	// ManifestSubstring identifies manifest files by name.
	ManifestSubstring string
}

// SmoldynConventions returns the naming conventions of Smoldyn-based
// archives.
func SmoldynConventions() Conventions {
	return Conventions{
		ModelFileName:      "model.txt",
		OutputFileName:     "modelout.txt",
		OutputSuffix:       ".txt",
		OutputExclude:      "model",
		SimulariumFileName: "smoldyn_combine_archive.simularium",
		ManifestSubstring:  "manifest",
	}
}
