package parser

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/pthm/contentlint/internal/paper"
)

// YAMLParser parses YAML paper definitions: a single mapping or a sequence.
type YAMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *YAMLParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeYAML
}

// Parse parses a YAML file
func (p *YAMLParser) Parse(path string, content []byte) (*ParsedFile, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, errors.New("empty document")
	}

	var defs []Definition
	switch doc := root.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&defs); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var def Definition
		if err := doc.Decode(&def); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	default:
		return nil, errors.New("expected a paper or a list of papers")
	}

	file := &ParsedFile{Path: path, FileType: FileTypeYAML}
	if len(defs) == 1 && defs[0].ID == "" {
		file.Papers = []*paper.Paper{defs[0].Paper(path)}
	} else {
		file.Papers = papersFrom(path, defs)
	}
	return file, nil
}
