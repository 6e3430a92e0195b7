// Package corpus collects the content files under a path and resolves the
// links between them.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pthm/contentlint/internal/paper"
	"github.com/pthm/contentlint/internal/parser"
	"github.com/pthm/contentlint/internal/text"
)

// ErrNoContent is returned when a walk finds no content files.
var ErrNoContent = errors.New("no content files found")

// Reference is a relative link from a document to another file.
type Reference struct {
	Href     string
	Target   string // Resolved absolute path
	Resolved bool   // Whether the target exists
}

// Document is one parsed content file.
type Document struct {
	Path       string // Relative to the corpus root
	AbsPath    string
	Parsed     *parser.ParsedFile
	References []Reference
}

// FileError records a file that could not be parsed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *FileError) Unwrap() error { return e.Err }

// Corpus is the set of documents found under a root path.
type Corpus struct {
	RootPath  string // Absolute path; the directory of the file when a file was given
	Documents []*Document
	Errors    []*FileError

	byPath map[string]*Document
}

// Build walks root, which may be a file or a directory, and parses every
// supported file. Hidden directories are skipped. When patterns are given
// only files whose base name or relative path matches one of them are
// parsed. Parse failures are kept in Errors and do not stop the walk.
func Build(root string, patterns []string, opts parser.Options) (*Corpus, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}

	c := &Corpus{RootPath: absRoot, byPath: make(map[string]*Document)}

	var files []string
	if !info.IsDir() {
		c.RootPath = filepath.Dir(absRoot)
		files = []string{absRoot}
	} else {
		err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				c.Errors = append(c.Errors, &FileError{Path: c.rel(path), Err: err})
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if path != absRoot && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if matches(c.rel(path), patterns) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for _, path := range files {
		parsed, err := parser.Parse(path, opts)
		if err != nil {
			c.Errors = append(c.Errors, &FileError{Path: c.rel(path), Err: err})
			continue
		}
		doc := &Document{Path: c.rel(path), AbsPath: path, Parsed: parsed}
		c.Documents = append(c.Documents, doc)
		c.byPath[path] = doc
	}

	if len(c.Documents) == 0 && len(c.Errors) == 0 {
		return nil, ErrNoContent
	}

	sort.Slice(c.Documents, func(i, j int) bool { return c.Documents[i].Path < c.Documents[j].Path })
	for _, doc := range c.Documents {
		doc.References = c.resolveReferences(doc)
	}
	return c, nil
}

func (c *Corpus) rel(path string) string {
	if r, err := filepath.Rel(c.RootPath, path); err == nil {
		return filepath.ToSlash(r)
	}
	return path
}

func matches(rel string, patterns []string) bool {
	if len(patterns) == 0 {
		return parser.Supported(rel)
	}
	base := filepath.Base(rel)
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
		if ok, _ := filepath.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// resolveReferences finds the relative links in every paper of doc.
// Absolute URLs, fragments and non-http schemes are ignored.
func (c *Corpus) resolveReferences(doc *Document) []Reference {
	var refs []Reference
	seen := make(map[string]bool)
	for _, p := range doc.Parsed.Papers {
		for _, link := range text.Links(p.Text()) {
			target, ok := c.resolveHref(doc.AbsPath, link.Href)
			if !ok || seen[target] {
				continue
			}
			seen[target] = true

			ref := Reference{Href: link.Href, Target: target}
			if _, known := c.byPath[target]; known {
				ref.Resolved = true
			} else if _, err := os.Stat(target); err == nil {
				ref.Resolved = true
			}
			refs = append(refs, ref)
		}
	}
	return refs
}

// resolveHref maps a relative href to a file path. Paths starting with "/"
// are relative to the corpus root, others to the linking document.
func (c *Corpus) resolveHref(source, href string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	p := filepath.FromSlash(u.Path)
	if strings.HasPrefix(u.Path, "/") {
		return filepath.Join(c.RootPath, p), true
	}
	return filepath.Join(filepath.Dir(source), p), true
}

// Papers returns every paper in path order.
func (c *Corpus) Papers() []*paper.Paper {
	var papers []*paper.Paper
	for _, doc := range c.Documents {
		papers = append(papers, doc.Parsed.Papers...)
	}
	return papers
}

// Document returns the document at a path relative to the root.
func (c *Corpus) Document(rel string) *Document {
	return c.byPath[filepath.Join(c.RootPath, filepath.FromSlash(rel))]
}

// AllReferences returns all references from all documents
func (c *Corpus) AllReferences() []Reference {
	var refs []Reference
	for _, doc := range c.Documents {
		refs = append(refs, doc.References...)
	}
	return refs
}

// PrintTree writes the documents and the files they link to.
func (c *Corpus) PrintTree(w io.Writer) {
	for _, doc := range c.Documents {
		fmt.Fprintf(w, "%s (%d %s)\n", doc.Path, len(doc.Parsed.Papers), plural(len(doc.Parsed.Papers), "paper", "papers"))
		for i, ref := range doc.References {
			connector := "├─"
			if i == len(doc.References)-1 {
				connector = "└─"
			}
			name := c.rel(ref.Target)
			if !ref.Resolved {
				name += " (missing)"
			}
			fmt.Fprintf(w, "%s %s\n", connector, name)
		}
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
