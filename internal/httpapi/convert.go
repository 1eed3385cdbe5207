package httpapi

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/yaklabco/docmorph/internal/logging"
	"github.com/yaklabco/docmorph/pkg/convert"
	"github.com/yaklabco/docmorph/pkg/document"
)

// contentTypes maps output formats onto response media types.
var contentTypes = map[convert.Format]string{
	convert.FormatMarkdown: "text/markdown; charset=utf-8",
	convert.FormatHTML:     "text/html; charset=utf-8",
	convert.FormatHTM:      "text/html; charset=utf-8",
	convert.FormatText:     "text/plain; charset=utf-8",
	convert.FormatPDF:      "application/pdf",
}

// upload is a document extracted from a multipart request, with any
// bundled images.
type upload struct {
	name   string
	format convert.Format
	data   []byte
	images document.ImageMap
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	to := convert.Format(strings.ToLower(r.PathValue("format")))
	if _, err := convert.For(to); err != nil {
		s.fail(w, r, http.StatusUnsupportedMediaType, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("parse multipart form: %w", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("missing file field: %w", err))
		return
	}
	defer file.Close()

	up, err := readUpload(file, header.Filename)
	if err != nil {
		s.fail(w, r, statusForUpload(err), err)
		return
	}

	out, _, err := convert.Convert(up.data, up.images, up.format, to)
	if err != nil {
		s.fail(w, r, statusForConversion(err), err)
		return
	}

	name := outputName(up.name, to)
	w.Header().Set("Content-Type", contentTypes[to])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)

	logging.FromContext(r.Context()).Info("converted",
		logging.FieldFile, up.name,
		logging.FieldFrom, up.format,
		logging.FieldTo, to,
		logging.FieldBytes, len(out),
	)
}

// readUpload pulls the document out of the uploaded file. Zip archives
// are unpacked: the first parseable document inside is the input, and
// image entries populate the parser's image map keyed by their archive
// path.
func readUpload(file multipart.File, filename string) (*upload, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	if strings.EqualFold(path.Ext(filename), ".zip") {
		return readArchive(data)
	}

	format, err := convert.FromExtension(filename)
	if err != nil {
		return nil, err
	}
	if !convert.CanParse(format) {
		return nil, fmt.Errorf("%w: %q has no parser", convert.ErrUnknownFormat, format)
	}
	return &upload{name: filename, format: format, data: data, images: document.ImageMap{}}, nil
}

func readArchive(data []byte) (*upload, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}

	up := &upload{images: document.ImageMap{}}
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(entry.Name)) {
		case ".png", ".jpg", ".jpeg":
			content, err := readEntry(entry)
			if err != nil {
				return nil, err
			}
			up.images[entry.Name] = content
		case ".md", ".html", ".htm", ".txt":
			if up.data != nil {
				continue
			}
			format, err := convert.FromExtension(entry.Name)
			if err != nil {
				return nil, err
			}
			content, err := readEntry(entry)
			if err != nil {
				return nil, err
			}
			up.name = path.Base(entry.Name)
			up.format = format
			up.data = content
		}
	}
	if up.data == nil {
		return nil, errors.New("zip archive contains no convertible document")
	}
	return up, nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("open zip entry %s: %w", entry.Name, err)
	}
	defer rc.Close()
	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read zip entry %s: %w", entry.Name, err)
	}
	return content, nil
}

// outputName renames the uploaded document for the response's
// Content-Disposition header.
func outputName(input string, to convert.Format) string {
	base := strings.TrimSuffix(path.Base(input), path.Ext(input))
	if base == "" {
		base = "document"
	}
	return base + "." + string(to)
}

func statusForUpload(err error) int {
	if errors.Is(err, convert.ErrUnknownFormat) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func statusForConversion(err error) int {
	switch {
	case errors.Is(err, document.ErrBadEncoding),
		errors.Is(err, document.ErrBadCast):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.FromContext(r.Context()).Warn("request failed",
		logging.FieldMethod, r.Method,
		logging.FieldPath, r.URL.Path,
		logging.FieldStatus, status,
		logging.FieldError, err,
	)
	http.Error(w, err.Error(), status)
}
