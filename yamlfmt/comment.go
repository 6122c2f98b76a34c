package yamlfmt

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
)

// multilineRemark matches one "previous text, newline, next marker" boundary
// inside a raw remark. Repeated leftmost matching splits the remark into
// (prefix ending in "#", following text) pairs, one per comment line after
// the first.
var multilineRemark = regexp.MustCompile(`(.*\n\s*#)(.*)`)

// NormalizeRemark rewrites a raw comment remark so that every "#" marker is
// followed by exactly one space and the trimmed remark text, with segments
// joined by newlines.
//
// The remark is the text after the first marker of a comment, possibly
// containing embedded newline+marker continuations:
//
//	NormalizeRemark("comment 11\n#        comment 12\n#comment 13\n")
//	// "comment 11\n# comment 12\n# comment 13"
//
// A remark with no continuation marker is treated as a single segment and
// returned with a leading space plus the trimmed text. This is a total
// function: any input, including empty or whitespace-only remarks, produces
// a normalized string.
func NormalizeRemark(remark string) string {
	segments := multilineRemark.FindAllStringSubmatch(remark, -1)
	if segments == nil {
		segments = [][]string{{remark, "", remark}}
	}

	var sb strings.Builder

	for _, segment := range segments {
		sb.WriteString(segment[1])
		sb.WriteByte(' ')
		sb.WriteString(strings.TrimSpace(segment[2]))
	}

	return sb.String()
}

// NormalizeComment rewrites c in place so every comment line reads
// "# <text>" with exactly one space after the marker. Multi-line grouping is
// preserved: c keeps one text per line, and the number of lines does not
// change. A nil comment, or one with no texts, is a no-op.
func NormalizeComment(c *yaml.Comment) {
	if c == nil || len(c.Texts) == 0 {
		return
	}

	// The registry stores one marker-less text per comment line. Rebuild the
	// raw marker-joined remark so continuation lines normalize as a group.
	remark := strings.Join(c.Texts, "\n#")
	formatted := strings.TrimLeftFunc(NormalizeRemark(remark), unicode.IsSpace)

	lines := strings.Split("# "+formatted, "\n")
	texts := make([]string, 0, len(lines))

	for _, line := range lines {
		texts = append(texts, strings.TrimPrefix(line, "#"))
	}

	c.Texts = texts
}

// NormalizeComments applies [NormalizeComment] to every comment of every
// structural position in cm. Positions are visited in arbitrary order;
// normalization is per-comment, so the order does not matter.
//
// A nil or empty registry is a no-op: a Document with no comment metadata at
// all (for example one built with [NewDocument]) normalizes cleanly.
func NormalizeComments(cm yaml.CommentMap) {
	for _, slot := range cm {
		for _, c := range slot {
			NormalizeComment(c)
		}
	}
}
