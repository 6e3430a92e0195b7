package parser

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/pthm/contentlint/internal/paper"
)

// JSONParser parses JSON paper definitions: a single object or an array.
type JSONParser struct{}

// CanParse returns true if this parser can handle the file
func (p *JSONParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeJSON
}

// Parse parses a JSON file
func (p *JSONParser) Parse(path string, content []byte) (*ParsedFile, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document")
	}

	var defs []Definition
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &defs); err != nil {
			return nil, err
		}
	} else {
		var def Definition
		if err := json.Unmarshal(trimmed, &def); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	file := &ParsedFile{Path: path, FileType: FileTypeJSON}
	if len(defs) == 1 && defs[0].ID == "" {
		file.Papers = []*paper.Paper{defs[0].Paper(path)}
	} else {
		file.Papers = papersFrom(path, defs)
	}
	return file, nil
}
