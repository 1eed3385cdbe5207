package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docmorph/pkg/convert"
	"github.com/yaklabco/docmorph/pkg/document"
)

func TestForKnownFormats(t *testing.T) {
	t.Parallel()

	for _, f := range convert.Formats() {
		tr, err := convert.For(f)
		require.NoError(t, err, "format %s", f)
		assert.NotNil(t, tr, "format %s", f)
	}
}

func TestForUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := convert.For("docx")
	require.ErrorIs(t, err, convert.ErrUnknownFormat)
}

func TestCanParse(t *testing.T) {
	t.Parallel()

	assert.True(t, convert.CanParse(convert.FormatMarkdown))
	assert.True(t, convert.CanParse(convert.FormatHTML))
	assert.True(t, convert.CanParse(convert.FormatText))
	assert.False(t, convert.CanParse(convert.FormatPDF))
}

func TestFromExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected convert.Format
		wantErr  bool
	}{
		{name: "markdown", path: "notes.md", expected: convert.FormatMarkdown},
		{name: "html", path: "page.html", expected: convert.FormatHTML},
		{name: "htm alias", path: "page.htm", expected: convert.FormatHTM},
		{name: "uppercase extension", path: "README.MD", expected: convert.FormatMarkdown},
		{name: "pdf", path: "out.pdf", expected: convert.FormatPDF},
		{name: "unknown", path: "file.docx", wantErr: true},
		{name: "no extension", path: "file", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f, err := convert.FromExtension(testCase.path)
			if testCase.wantErr {
				require.ErrorIs(t, err, convert.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, f)
		})
	}
}

func TestConvertMarkdownToHTML(t *testing.T) {
	t.Parallel()

	out, images, err := convert.Convert(
		[]byte("# Title\n\nHello\n"), nil,
		convert.FormatMarkdown, convert.FormatHTML,
	)
	require.NoError(t, err)
	assert.Empty(t, images)
	assert.Contains(t, string(out), "<h1>Title</h1>")
	assert.Contains(t, string(out), "<p>Hello</p>")
}

func TestConvertMarkdownToPDF(t *testing.T) {
	t.Parallel()

	out, _, err := convert.Convert(
		[]byte("# Title\n\nHello\n"), nil,
		convert.FormatMarkdown, convert.FormatPDF,
	)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestConvertCarriesImages(t *testing.T) {
	t.Parallel()

	pngBytes := []byte{0x89, 'P', 'N', 'G'}
	out, images, err := convert.Convert(
		[]byte("![pic](a.png \"P\")\n"),
		document.ImageMap{"a.png": pngBytes},
		convert.FormatMarkdown, convert.FormatHTML,
	)
	require.NoError(t, err)
	assert.Contains(t, string(out), `src="image0.png"`)
	assert.Equal(t, document.ImageMap{"image0.png": pngBytes}, images)
}

func TestConvertMarkdownThroughHTMLAndBack(t *testing.T) {
	t.Parallel()

	page, _, err := convert.Convert(
		[]byte("# Title\n\n1. a\n2. b\n"), nil,
		convert.FormatMarkdown, convert.FormatHTML,
	)
	require.NoError(t, err)

	back, _, err := convert.Convert(page, nil, convert.FormatHTML, convert.FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, string(back), "# Title\n")
	assert.Contains(t, string(back), "1. a\n2. b\n")
}

func TestConvertPropagatesParseErrors(t *testing.T) {
	t.Parallel()

	_, _, err := convert.Convert(
		[]byte{0xff, 0xfe}, nil,
		convert.FormatMarkdown, convert.FormatHTML,
	)
	require.ErrorIs(t, err, document.ErrBadEncoding)
}

func TestConvertUnknownFormats(t *testing.T) {
	t.Parallel()

	_, _, err := convert.Convert(nil, nil, "docx", convert.FormatHTML)
	require.ErrorIs(t, err, convert.ErrUnknownFormat)

	_, _, err = convert.Convert(nil, nil, convert.FormatMarkdown, "docx")
	require.ErrorIs(t, err, convert.ErrUnknownFormat)
}
