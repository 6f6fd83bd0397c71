// Package omex reads, mutates, and repacks COMBINE/OMEX archives.
//
// An OMEX archive is a zip container bundling a computational model, its
// simulation description, and result files, indexed by a manifest. This
// package provides the high-level [Archive] surface over such archives as
// produced around spatial (Smoldyn) simulations: open a packaged .omex file
// or an already-unpacked directory, locate the manifest and the model and
// output files by naming convention, register newly produced result files in
// the manifest, and repack the working directory into an archive file.
//
// Manifest modeling and serialization live in the manifest subpackage, and
// the registry of content format identifiers in format.
//
// # Quick Start
//
// Open an archive and register a freshly converted visualization file:
//
//	a, err := omex.Open("minE.omex")
//	if err != nil {
//	    return err
//	}
//	model, err := a.LocateModelFile()
//	if err != nil {
//	    return err
//	}
//	// ... run the simulator and the trajectory converter against model ...
//	err = a.RegisterContent("result.simularium",
//	    omex.RegisterWithFormatName(format.Simularium),
//	)
//	if err != nil {
//	    return err
//	}
//	err = a.Repack("")
//
// # Concurrency
//
// An Archive performs no locking of its working directory or manifest file.
// Serialize all mutation of a given archive through a single Archive;
// concurrent RegisterContent calls from separate handles are detected via a
// digest precondition on the manifest and fail with [manifest.ErrModified]
// instead of silently losing an update.
package omex
