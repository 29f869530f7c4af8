package debugger

// NamedTag keys a SourceMap entry: a numeric tag plus an optional name for
// disambiguating multiple instances that share a tag.
type NamedTag struct {
	Tag  uint64
	Name string
}

func NewNamelessTag(tag uint64) NamedTag { return NamedTag{Tag: tag} }

// SourceMap maps (tag, name) to a source-location string. Lookup tries the
// specific name first, falling back to the tag's empty-name entry if one
// was registered — this is carried verbatim from the source's
// interp/src/debugger/source/structures.rs.
type SourceMap struct {
	entries map[NamedTag]string
}

// NewSourceMap wraps an already-built entry map (e.g. from the metadata
// parser).
func NewSourceMap(entries map[NamedTag]string) *SourceMap {
	if entries == nil {
		entries = map[NamedTag]string{}
	}
	return &SourceMap{entries: entries}
}

// Lookup resolves a (tag, name) key, first for the specific name, then
// falling back to the same tag's empty-name entry.
func (m *SourceMap) Lookup(tag uint64, name string) (string, bool) {
	if m == nil {
		return "", false
	}
	if loc, ok := m.entries[NamedTag{Tag: tag, Name: name}]; ok {
		return loc, true
	}
	loc, ok := m.entries[NewNamelessTag(tag)]
	return loc, ok
}
