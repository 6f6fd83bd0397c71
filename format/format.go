// Package format is the registry of COMBINE/OMEX content format identifiers.
//
// Every manifest entry in an OMEX archive names its content type with a
// URI-style format identifier, drawn either from the COMBINE specification
// vocabulary (http://identifiers.org/combine.specifications/...) or from the
// purl.org media-type namespace (http://purl.org/NET/mediatypes/...). The
// registry maps a symbolic format name to its canonical identifier and to a
// recognition pattern that also accepts the documented historical spellings
// found in manifests written by other tools.
package format

import "regexp"

// Format is the symbolic name of a registered content format.
type Format string

// Resolve tests uri against each registered pattern in table order and
// returns the first matching format.
//
// Resolve never fails: an identifier that matches no pattern is a normal
// "unknown format" result, reported by the false return. Matching is
// case-sensitive; patterns tolerate the alternate spellings baked into the
// table (https scheme, historical identifier variants) but nothing else.
func Resolve(uri string) (Format, bool) {
	for _, def := range registry {
		if def.pattern.MatchString(uri) {
			return def.name, true
		}
	}
	return "", false
}

// CanonicalURI returns the canonical identifier for a format, used when
// writing new manifest entries.
func CanonicalURI(f Format) (string, bool) {
	def, ok := byName[f]
	if !ok {
		return "", false
	}
	return def.uri, true
}

// Known reports whether f is a registered format name.
func Known(f Format) bool {
	_, ok := byName[f]
	return ok
}

// definition is one row of the registry table.
type definition struct {
	name    Format
	uri     string
	pattern *regexp.Regexp
}

var byName = make(map[Format]definition, len(registry))

func init() {
	for _, def := range registry {
		byName[def.name] = def
	}
}

// spec builds a definition for a COMBINE specification identifier. The
// pattern accepts both schemes and an optional suffix (level/version
// qualifiers) given as a regular expression fragment.
func spec(name Format, ident, suffix string) definition {
	return definition{
		name:    name,
		uri:     "http://identifiers.org/combine.specifications/" + ident,
		pattern: regexp.MustCompile(`^https?://identifiers\.org/combine\.specifications/` + ident + suffix + `$`),
	}
}

// specAlt is spec with an alternate regular-expression fragment for the
// identifier itself, covering historical spellings. The ident argument is
// the canonical spelling; altIdent is the pattern fragment.
func specAlt(name Format, ident, altIdent, suffix string) definition {
	return definition{
		name:    name,
		uri:     "http://identifiers.org/combine.specifications/" + ident,
		pattern: regexp.MustCompile(`^https?://identifiers\.org/combine\.specifications/(` + altIdent + `)` + suffix + `$`),
	}
}

// mediaType builds a definition for a purl.org media-type identifier.
func mediaType(name Format, mime string) definition {
	return definition{
		name:    name,
		uri:     "http://purl.org/NET/mediatypes/" + mime,
		pattern: regexp.MustCompile(`^https?://purl\.org/NET/mediatypes/` + regexp.QuoteMeta(mime) + `$`),
	}
}

// mediaTypeAlt is mediaType with extra accepted MIME spellings. The first
// MIME type is canonical; the rest are historical variants.
func mediaTypeAlt(name Format, canonical string, variants ...string) definition {
	alt := regexp.QuoteMeta(canonical)
	for _, v := range variants {
		alt += "|" + regexp.QuoteMeta(v)
	}
	return definition{
		name:    name,
		uri:     "http://purl.org/NET/mediatypes/" + canonical,
		pattern: regexp.MustCompile(`^https?://purl\.org/NET/mediatypes/(` + alt + `)$`),
	}
}
