package format

// Symbolic names for every registered format. The set follows the COMBINE
// community's controlled vocabulary of archive content types: simulation
// formats, model languages, data formats, and the common document and media
// types that turn up alongside them, plus a catch-all Other.
const (
	// COMBINE specifications.
	SBML         Format = "SBML"
	SEDML        Format = "SED-ML"
	SBGN         Format = "SBGN"
	SBOL         Format = "SBOL"
	CellML       Format = "CellML"
	NeuroML      Format = "NeuroML"
	BioPAX       Format = "BioPAX"
	OMEX         Format = "OMEX"
	OMEXManifest Format = "OMEX manifest"
	OMEXMetadata Format = "OMEX metadata"

	// Simulation and model languages.
	BNGL       Format = "BNGL"
	BNGLNet    Format = "BNGL network"
	COPASI     Format = "COPASI"
	GINML      Format = "GINML"
	HOC        Format = "HOC"
	Kappa      Format = "Kappa"
	LEMS       Format = "LEMS"
	MASS       Format = "MASS"
	MorpheusML Format = "MorpheusML"
	NMODL      Format = "NMODL"
	NuML       Format = "NuML"
	RBA        Format = "RBA"
	Smoldyn    Format = "Smoldyn"
	VCML       Format = "VCML"
	XPP        Format = "XPP"
	ZGINML     Format = "ZGINML"

	// Trajectory, data, and numeric formats.
	CSV        Format = "CSV"
	HDF5       Format = "HDF5"
	Simularium Format = "Simularium"
	TSV        Format = "TSV"
	GMSHMesh   Format = "GMSH mesh"
	GraphML    Format = "GraphML"
	MATLABData Format = "MATLAB data"
	Vega       Format = "Vega"
	VegaLite   Format = "Vega-Lite"

	// Code and markup.
	HTML       Format = "HTML"
	INI        Format = "INI"
	JSON       Format = "JSON"
	Markdown   Format = "Markdown"
	MATLAB     Format = "MATLAB"
	Notebook   Format = "Jupyter notebook"
	OWL        Format = "OWL"
	Python     Format = "Python"
	R          Format = "R"
	RDFXML     Format = "RDF-XML"
	Scilab     Format = "Scilab"
	Text       Format = "plain text"
	XML        Format = "XML"
	YAML       Format = "YAML"

	// Documents and spreadsheets.
	DOC        Format = "DOC"
	DOCX       Format = "DOCX"
	ODS        Format = "ODS"
	ODT        Format = "ODT"
	PDF        Format = "PDF"
	Postscript Format = "Postscript"
	XLS        Format = "XLS"
	XLSX       Format = "XLSX"

	// Images.
	BMP  Format = "BMP"
	GIF  Format = "GIF"
	ICO  Format = "ICO"
	JPEG Format = "JPEG"
	PNG  Format = "PNG"
	SVG  Format = "SVG"
	TIFF Format = "TIFF"
	WebP Format = "WebP"

	// Containers and fallback.
	Zip   Format = "ZIP"
	Other Format = "other"
)

// registry is the process-wide format table, in resolution order. More
// specific COMBINE identifiers come before the media-type rows so that an
// identifiers.org URI never falls through to a purl.org pattern.
var registry = []definition{
	spec(SBML, "sbml", `(\.level\-\d+\.version\-\d+)?`),
	// Early SED-ML manifests spelled the identifier without the hyphen.
	specAlt(SEDML, "sed-ml", `sed\-?ml`, `(\.level\-\d+\.version\-\d+)?`),
	spec(SBGN, "sbgn", `(\.[a-z]+)?(\.level\-\d+)?(\.version\-\d+(\.\d+)?)?`),
	spec(SBOL, "sbol", `(\.\d+)?`),
	spec(CellML, "cellml", `(\.\d+\.\d+)?`),
	spec(NeuroML, "neuroml", `(\.level\-\d+)?(\.version\-\d+)?`),
	spec(BioPAX, "biopax", `(\.level\-\d+)?`),
	spec(OMEXManifest, "omex-manifest", ``),
	spec(OMEXMetadata, "omex-metadata", ``),
	spec(OMEX, "omex", `(\.version\-\d+)?`),

	mediaType(BNGL, "text/bngl+plain"),
	mediaType(BNGLNet, "text/bngl.net+plain"),
	mediaType(COPASI, "application/x-copasi"),
	mediaType(GINML, "application/ginml+xml"),
	mediaType(HOC, "text/x-hoc"),
	mediaType(Kappa, "text/x-kappa"),
	mediaType(LEMS, "application/lems+xml"),
	mediaType(MASS, "application/mass+json"),
	mediaType(MorpheusML, "application/morpheusml+xml"),
	mediaType(NMODL, "text/x-nmodl"),
	mediaType(NuML, "application/numl+xml"),
	mediaType(RBA, "application/rba+zip"),
	// Some writers used an x- prefixed subtype for Smoldyn model files.
	mediaTypeAlt(Smoldyn, "text/smoldyn+plain", "text/x-smoldyn"),
	mediaType(VCML, "application/vcml+xml"),
	mediaType(XPP, "text/x-xpp"),
	mediaType(ZGINML, "application/zginml+zip"),

	mediaType(CSV, "text/csv"),
	mediaTypeAlt(HDF5, "application/x-hdf", "application/x-hdf5"),
	mediaType(Simularium, "application/simularium+json"),
	mediaType(TSV, "text/tab-separated-values"),
	mediaType(GMSHMesh, "model/mesh"),
	mediaType(GraphML, "application/graphml+xml"),
	mediaType(MATLABData, "application/x-matlab-data"),
	mediaType(Vega, "application/vnd.vega.v5+json"),
	mediaType(VegaLite, "application/vnd.vegalite.v3+json"),

	mediaType(HTML, "text/html"),
	mediaTypeAlt(INI, "text/x-ini", "text/ini"),
	mediaType(JSON, "application/json"),
	mediaTypeAlt(Markdown, "text/markdown", "text/x-markdown"),
	mediaType(MATLAB, "text/x-matlab"),
	mediaType(Notebook, "application/x-ipynb+json"),
	mediaType(OWL, "application/owl+xml"),
	mediaType(Python, "application/x-python-code"),
	mediaType(R, "text/x-r"),
	mediaType(RDFXML, "application/rdf+xml"),
	mediaType(Scilab, "application/x-scilab"),
	mediaType(Text, "text/plain"),
	mediaType(XML, "application/xml"),
	mediaTypeAlt(YAML, "application/x-yaml", "text/yaml"),

	mediaType(DOC, "application/msword"),
	mediaType(DOCX, "application/vnd.openxmlformats-officedocument.wordprocessingml.document"),
	mediaType(ODS, "application/vnd.oasis.opendocument.spreadsheet"),
	mediaType(ODT, "application/vnd.oasis.opendocument.text"),
	mediaType(PDF, "application/pdf"),
	mediaType(Postscript, "application/postscript"),
	mediaType(XLS, "application/vnd.ms-excel"),
	mediaType(XLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),

	mediaType(BMP, "image/bmp"),
	mediaType(GIF, "image/gif"),
	mediaTypeAlt(ICO, "image/x-icon", "image/vnd.microsoft.icon"),
	mediaType(JPEG, "image/jpeg"),
	mediaType(PNG, "image/png"),
	mediaType(SVG, "image/svg+xml"),
	mediaType(TIFF, "image/tiff"),
	mediaType(WebP, "image/webp"),

	mediaType(Zip, "application/zip"),
	mediaType(Other, "application/octet-stream"),
}
