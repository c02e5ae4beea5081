package icons

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Normalize canonicalizes a record loaded from disk. Older profile documents
// stored absent optional fields as null, empty strings or missing keys
// interchangeably; everything collapses to the zero value here so the
// comparison code never has to shape-check.
func Normalize(r Record) Record {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Image = strings.TrimSpace(r.Image)
	r.ProgramLink = strings.TrimSpace(r.ProgramLink)
	r.WebsiteLink = strings.TrimSpace(r.WebsiteLink)
	r.FontColor = strings.TrimSpace(r.FontColor)
	if len(r.Args) == 0 {
		r.Args = nil
	}
	if r.Row < 0 {
		r.Row = 0
	}
	if r.Col < 0 {
		r.Col = 0
	}
	return r
}

// DisplayName returns the icon name truncated to at most max grapheme
// clusters, with an ellipsis when shortened. Counting graphemes instead of
// bytes keeps combined emoji and Hangul labels intact.
func DisplayName(name string, max int) string {
	if max <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(name) <= max {
		return name
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(name)
	kept := 0
	for g.Next() && kept < max-1 {
		b.WriteString(g.Str())
		kept++
	}
	b.WriteString("…")
	return b.String()
}
