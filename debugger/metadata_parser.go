package debugger

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ctrlflow/interp/errs"
)

// FromFile loads a SourceMap from an external metadata file: UTF-8 text,
// one entry per line as "tag<TAB>name<TAB>location", blank lines and
// '#'-prefixed comment lines ignored. A nil path (no file configured) is
// not an error — it yields (nil, nil), matching SourceMap::from_file's
// Option<PathBuf> handling in the source. Only corrupt content on an
// existing file is an error.
func FromFile(path string) (*SourceMap, error) {
	if path == "" {
		return nil, nil
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &errs.IoError{Path: path, Cause: err}
	}
	return ParseMetadata(path, contents)
}

// ParseMetadata parses the in-memory contents of a source-map file, as
// FromFile does after reading it from disk. Exposed separately so tests and
// embedders that already hold the bytes (e.g. from an fs.FS) need not round
// trip through the filesystem.
func ParseMetadata(path string, contents []byte) (*SourceMap, error) {
	if !utf8.Valid(contents) {
		return nil, &errs.Utf8Error{Path: path}
	}

	entries := map[NamedTag]string{}
	scanner := bufio.NewScanner(strings.NewReader(string(contents)))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			return nil, &errs.MetadataParseError{
				Path: path, Line: lineNo,
				Msg: "expected 3 tab-separated fields (tag, name, location), got " + strconv.Itoa(len(fields)),
			}
		}
		tag, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, &errs.MetadataParseError{Path: path, Line: lineNo, Msg: "invalid tag: " + err.Error()}
		}
		entries[NamedTag{Tag: tag, Name: fields[1]}] = fields[2]
	}
	if err := scanner.Err(); err != nil {
		return nil, &errs.IoError{Path: path, Cause: err}
	}

	return NewSourceMap(entries), nil
}
