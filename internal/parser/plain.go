package parser

import "github.com/pthm/contentlint/internal/paper"

// PlainParser parses plain text files with no special structure
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse turns the whole file into one paper
func (p *PlainParser) Parse(path string, content []byte) (*ParsedFile, error) {
	return &ParsedFile{
		Path:     path,
		FileType: FileTypeText,
		Papers:   []*paper.Paper{Definition{Text: string(content)}.Paper(path)},
	}, nil
}
