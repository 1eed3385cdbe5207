package markdown_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docmorph/pkg/document"
	"github.com/yaklabco/docmorph/pkg/markdown"
)

func TestParseHeaderAndParagraph(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("# Title\n\nHello world\n"), nil)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewHeader(1, "Title"),
		document.NewParagraph(document.NewText("Hello world", 8)),
	}, doc.Elements)

	out, images, err := markdown.New().Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nHello world \n\n", string(out))
	assert.Empty(t, images)
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := markdown.New().Parse([]byte{0xff, 0xfe, 0xfd}, nil)
	require.ErrorIs(t, err, document.ErrBadEncoding)
}

func TestParseHeaderLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected *document.Header
	}{
		{"level one", "# A\n", document.NewHeader(1, "A")},
		{"level three", "### A\n", document.NewHeader(3, "A")},
		{"level six", "###### A\n", document.NewHeader(6, "A")},
		{"level clamped to six", "######## A\n", document.NewHeader(6, "A")},
		{"no space after hashes", "#A\n", document.NewHeader(1, "A")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc, err := markdown.New().Parse([]byte(testCase.input), nil)
			require.NoError(t, err)
			require.Len(t, doc.Elements, 1)
			assert.Equal(t, testCase.expected, doc.Elements[0])
		})
	}
}

func TestParseOrderedListWithNesting(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("1. a\n2. b\n   1. c\n3. d\n"), nil)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewList(true,
			document.NewListItem(document.NewText("a", 8)),
			document.NewListItem(document.NewText("b", 8)),
			document.NewListItem(document.NewList(true,
				document.NewListItem(document.NewText("c", 8)),
			)),
			document.NewListItem(document.NewText("d", 8)),
		),
	}, doc.Elements)

	out, _, err := markdown.New().Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, "1. a\n2. b\n  1. c\n3. d\n\n", string(out))
}

func TestParseBulletListWithNesting(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("- a\n  - b\n  - c\n- d\n"), nil)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewList(false,
			document.NewListItem(document.NewText("a", 8)),
			document.NewListItem(document.NewList(false,
				document.NewListItem(document.NewText("b", 8)),
				document.NewListItem(document.NewText("c", 8)),
			)),
			document.NewListItem(document.NewText("d", 8)),
		),
	}, doc.Elements)
}

func TestParseListSurvivesBlankLines(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("- a\n\n- b\n"), nil)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewList(false,
			document.NewListItem(document.NewText("a", 8)),
			document.NewListItem(document.NewText("b", 8)),
		),
	}, doc.Elements)
}

func TestParseListClosedByParagraph(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("- a\nplain text\n"), nil)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewList(false,
			document.NewListItem(document.NewText("a", 8)),
		),
		document.NewParagraph(document.NewText("plain text", 8)),
	}, doc.Elements)
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("| A | B |\n| - | - |\n| 1 | 2 |\n"), nil)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewTable(
			[]*document.TableHeader{
				document.NewTableHeader(document.NewText("A", 8)),
				document.NewTableHeader(document.NewText("B", 8)),
			},
			[]*document.TableRow{
				document.NewTableRow(
					document.NewTableCell(document.NewText("1", 8)),
					document.NewTableCell(document.NewText("2", 8)),
				),
			},
		),
	}, doc.Elements)

	out, _, err := markdown.New().Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, "| A | B |\n|---|---|\n| 1 | 2 |\n\n", string(out))
}

func TestParseTableDiscardsDelimiterRuns(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("| A |\n|---|\n| x |\n"), nil)
	require.NoError(t, err)

	table := document.MustAs[*document.Table](doc.Elements[0])
	require.Len(t, table.Headers, 1)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "x", document.MustAs[*document.Text](table.Rows[0].Cells[0].Child).Content)
}

func TestParseBareURL(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("See http://example.com now\n"), nil)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewParagraph(
			document.NewText("See ", 8),
			document.NewHyperlink("http://example.com", "http://example.com", "http://example.com"),
			document.NewText(" now", 8),
		),
	}, doc.Elements)

	out, _, err := markdown.New().Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, "See http://example.com now \n\n", string(out))
}

func TestParseImageResolvesMap(t *testing.T) {
	t.Parallel()

	pngBytes := []byte{0x89, 'P', 'N', 'G'}
	doc, err := markdown.New().Parse(
		[]byte("![pic](a.png \"P\")\n"),
		document.ImageMap{"a.png": pngBytes},
	)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewParagraph(
			document.NewImage(pngBytes, "P", "pic", document.ImagePNG),
		),
	}, doc.Elements)

	out, images, err := markdown.New().Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, "![pic](image0.png \"P\")\n\n", string(out))
	assert.Equal(t, document.ImageMap{"image0.png": pngBytes}, images)
}

func TestParseImageMissingFromMap(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("![pic](missing.png \"P\")\n"), nil)
	require.NoError(t, err)

	para := document.MustAs[*document.Paragraph](doc.Elements[0])
	img := document.MustAs[*document.Image](para.Children[0])
	assert.Empty(t, img.Bytes)
	assert.Equal(t, "pic", img.Alt)
}

func TestParseCRLFInput(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("# Title\r\n\r\nbody\r\n"), nil)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewHeader(1, "Title"),
		document.NewParagraph(document.NewText("body", 8)),
	}, doc.Elements)
}

func TestParseMultilineParagraph(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Parse([]byte("one\ntwo\n\nthree\n"), nil)
	require.NoError(t, err)

	require.Equal(t, []document.Node{
		document.NewParagraph(
			document.NewText("one", 8),
			document.NewText("two", 8),
		),
		document.NewParagraph(document.NewText("three", 8)),
	}, doc.Elements)
}

// normalize trims trailing spaces from Text leaves so parse/generate
// round trips can be compared modulo the generator's trailing-space rule.
func normalize(nodes []document.Node) {
	for _, n := range nodes {
		switch el := n.(type) {
		case *document.Text:
			el.Content = strings.TrimRight(el.Content, " ")
		case *document.Paragraph:
			normalize(el.Children)
		case *document.List:
			for _, item := range el.Items {
				normalize([]document.Node{item.Child})
			}
		}
	}
}

func TestReparseMatchesOriginalTree(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"# Title\n\nHello world\n",
		"1. a\n2. b\n   1. c\n3. d\n",
		"- a\n  - b\n  - c\n- d\n",
		"| A | B |\n| - | - |\n| 1 | 2 |\n",
		"See http://example.com now\n",
	}

	for _, input := range inputs {
		tr := markdown.New()
		doc, err := tr.Parse([]byte(input), nil)
		require.NoError(t, err)

		out, _, err := tr.Generate(doc)
		require.NoError(t, err)

		reparsed, err := tr.Parse(out, nil)
		require.NoError(t, err)

		normalize(doc.Elements)
		normalize(reparsed.Elements)
		assert.Equal(t, doc.Elements, reparsed.Elements, "input %q", input)
	}
}

func TestRoundTripIsStable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"header and paragraph", "# Title\n\nHello world \n\n"},
		{"nested ordered list", "1. a\n2. b\n  1. c\n3. d\n\n"},
		{"nested bullet list", "- a\n  - b\n  - c\n- d\n\n"},
		{"table", "| A | B |\n|---|---|\n| 1 | 2 |\n\n"},
		{"link", "[docs](https://example.com/docs \"docs\") \n\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tr := markdown.New()
			doc, err := tr.Parse([]byte(testCase.input), nil)
			require.NoError(t, err)
			first, _, err := tr.Generate(doc)
			require.NoError(t, err)

			doc2, err := tr.Parse(first, nil)
			require.NoError(t, err)
			second, _, err := tr.Generate(doc2)
			require.NoError(t, err)

			assert.Equal(t, string(first), string(second))
		})
	}
}
