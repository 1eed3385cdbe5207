package markdown

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/yaklabco/docmorph/pkg/document"
)

// Fixed inline patterns. Image paths and link targets stop at the first
// space, quote, or closing parenthesis so that an optional quoted title
// can follow.
const (
	imageExpr      = `!\[([^\]]*)\]\(([^") ]+) +"([^"]*)"\)`
	linkTitledExpr = `\[([^\]]*)\]\(([^") ]+) +"([^"]*)"\)`
	linkExpr       = `\[([^\]]*)\]\(([^") ]+)\)`
	bareURLExpr    = `https?://[^ )]+`
)

// inlinePatterns holds the compiled inline matchers.
type inlinePatterns struct {
	image      *regexp.Regexp
	linkTitled *regexp.Regexp
	link       *regexp.Regexp
	bareURL    *regexp.Regexp
}

var (
	patternsOnce sync.Once
	patternsVal  *inlinePatterns
	patternsErr  error
)

// patterns compiles the fixed inline patterns once. A compile failure is
// a programmer error and surfaces as document.ErrBadRegex.
func patterns() (*inlinePatterns, error) {
	patternsOnce.Do(func() {
		patternsVal, patternsErr = compilePatterns()
	})
	return patternsVal, patternsErr
}

func compilePatterns() (*inlinePatterns, error) {
	p := &inlinePatterns{}
	for _, entry := range []struct {
		dst  **regexp.Regexp
		expr string
	}{
		{&p.image, imageExpr},
		{&p.linkTitled, linkTitledExpr},
		{&p.link, linkExpr},
		{&p.bareURL, bareURLExpr},
	} {
		re, err := regexp.Compile(entry.expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", document.ErrBadRegex, entry.expr, err)
		}
		*entry.dst = re
	}
	return p, nil
}

// Leaf text produced by the parser uses this point size.
const leafTextSize = 8

// scanLine appends leaf nodes for one logical line's inline content.
// Images are matched first, greedily left to right; the substrings
// between image matches are then scanned for links and bare URLs.
// Fragments outside any match become Text nodes verbatim.
func (p *inlinePatterns) scanLine(line string, images document.ImageMap) []document.Node {
	var out []document.Node
	pos := 0
	for _, m := range p.image.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > pos {
			out = append(out, p.scanSpans(line[pos:m[0]])...)
		}
		alt := line[m[2]:m[3]]
		path := line[m[4]:m[5]]
		title := line[m[6]:m[7]]
		out = append(out, document.NewImage(images[path], title, alt, document.ImagePNG))
		pos = m[1]
	}
	if pos < len(line) {
		out = append(out, p.scanSpans(line[pos:])...)
	}
	return out
}

// scanSpans scans a segment free of image constructs for links and bare
// URLs, left to right, preferring the titled link form on ties.
func (p *inlinePatterns) scanSpans(s string) []document.Node {
	var out []document.Node
	for s != "" {
		node, start, end := p.nextSpan(s)
		if node == nil {
			out = append(out, document.NewText(s, leafTextSize))
			return out
		}
		if start > 0 {
			out = append(out, document.NewText(s[:start], leafTextSize))
		}
		out = append(out, node)
		s = s[end:]
	}
	return out
}

// nextSpan finds the leftmost link or bare URL in s. It returns nil when
// the segment holds no further constructs.
func (p *inlinePatterns) nextSpan(s string) (document.Node, int, int) {
	best := -1
	var node document.Node
	var span [2]int

	consider := func(m []int, make func(m []int) document.Node) {
		if m == nil {
			return
		}
		if best != -1 && m[0] >= best {
			return
		}
		best = m[0]
		node = make(m)
		span = [2]int{m[0], m[1]}
	}

	consider(p.linkTitled.FindStringSubmatchIndex(s), func(m []int) document.Node {
		return document.NewHyperlink(s[m[2]:m[3]], s[m[4]:m[5]], s[m[6]:m[7]])
	})
	consider(p.link.FindStringSubmatchIndex(s), func(m []int) document.Node {
		text := s[m[2]:m[3]]
		return document.NewHyperlink(text, s[m[4]:m[5]], text)
	})
	consider(p.bareURL.FindStringIndex(s), func(m []int) document.Node {
		url := s[m[0]:m[1]]
		return document.NewHyperlink(url, url, url)
	})

	if node == nil {
		return nil, 0, 0
	}
	return node, span[0], span[1]
}
