package parser

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var charsets = map[string]encoding.Encoding{
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"cp1251":       charmap.Windows1251,
	"cp1252":       charmap.Windows1252,
	"koi8-r":       charmap.KOI8R,
	"koi8-u":       charmap.KOI8U,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-15":  charmap.ISO8859_15,
	"macintosh":    charmap.Macintosh,
	"ibm866":       charmap.CodePage866,
	"cp866":        charmap.CodePage866,
}

// Encodings returns the names accepted by Decode, besides "utf-8".
func Encodings() []string {
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	return names
}

// Decode converts content from the named charset to UTF-8. An empty name or
// "utf-8" returns content unchanged; a leading byte order mark is dropped.
func Decode(content []byte, name string) ([]byte, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf-8", "utf8":
		return trimBOM(content), nil
	}
	enc, ok := charsets[name]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return out, nil
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}

var metaCharsetRe = regexp.MustCompile(`(?i)<meta\b[^>]*\bcharset\s*=\s*["']?([\w-]+)`)

// declaredCharset returns the charset an HTML document declares in its head,
// if it is one Decode knows.
func declaredCharset(content []byte) string {
	head := content
	if len(head) > 2048 {
		head = head[:2048]
	}
	m := metaCharsetRe.FindSubmatch(head)
	if m == nil {
		return ""
	}
	name := strings.ToLower(string(m[1]))
	if _, ok := charsets[name]; ok {
		return name
	}
	return ""
}
