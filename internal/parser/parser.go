// Package parser turns content files into papers. Markdown, HTML, plain
// text and JSON or YAML paper definitions are supported.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm/contentlint/internal/paper"
)

// ParsedFile represents a parsed content file
type ParsedFile struct {
	Path        string
	FileType    FileType
	Papers      []*paper.Paper
	Frontmatter map[string]interface{} // YAML frontmatter from markdown files
}

// FileType represents the type of content file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeMarkdown
	FileTypeHTML
	FileTypeText
	FileTypeJSON
	FileTypeYAML
)

func (t FileType) String() string {
	switch t {
	case FileTypeMarkdown:
		return "markdown"
	case FileTypeHTML:
		return "html"
	case FileTypeText:
		return "text"
	case FileTypeJSON:
		return "json"
	case FileTypeYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Options control how files are read.
type Options struct {
	// Encoding names a legacy charset the file is stored in, such as
	// "windows-1251" or "koi8-r". Empty means UTF-8.
	Encoding string
}

// Parser defines the interface for parsing content files
type Parser interface {
	Parse(path string, content []byte) (*ParsedFile, error)
	CanParse(path string) bool
}

// Parse reads and parses a file using the appropriate parser
func Parse(path string, opts Options) (*ParsedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(path, content, opts)
}

// ParseBytes parses content as if it was read from path.
func ParseBytes(path string, content []byte, opts Options) (*ParsedFile, error) {
	enc := opts.Encoding
	if enc == "" && GetFileType(path) == FileTypeHTML {
		enc = declaredCharset(content)
	}
	content, err := Decode(content, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	parsed, err := getParser(path).Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetFileType(path) {
	case FileTypeMarkdown:
		return &MarkdownParser{}
	case FileTypeHTML:
		return &HTMLParser{}
	case FileTypeJSON:
		return &JSONParser{}
	case FileTypeYAML:
		return &YAMLParser{}
	default:
		return &PlainParser{}
	}
}

// GetFileType returns the FileType for a given path
func GetFileType(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FileTypeMarkdown
	case ".html", ".htm", ".xhtml":
		return FileTypeHTML
	case ".txt", ".text":
		return FileTypeText
	case ".json":
		return FileTypeJSON
	case ".yaml", ".yml":
		return FileTypeYAML
	default:
		return FileTypeUnknown
	}
}

// Supported reports whether path has an extension the parsers handle.
func Supported(path string) bool {
	return GetFileType(path) != FileTypeUnknown
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters
// Returns the parsed frontmatter and the remaining content without frontmatter
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &frontmatter); err != nil {
		return nil, content
	}

	remaining := rest[endIdx+4:] // +4 for "\n---"
	remaining = strings.TrimPrefix(remaining, "\r")
	remaining = strings.TrimPrefix(remaining, "\n")

	return frontmatter, []byte(remaining)
}
