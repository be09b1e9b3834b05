package client

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

type formField struct {
	name  string
	value string
}

type formFile struct {
	field string
	path  string
}

// multipartForm collects fields and file attachments and encodes them in
// insertion order, fields first.
type multipartForm struct {
	fields []formField
	files  []formFile
}

func newMultipartForm() *multipartForm {
	return &multipartForm{}
}

func (f *multipartForm) Field(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// File adds the file at path under field. Repeating a field name sends a
// list, which is how characters[] and character_voice_files[] are encoded.
func (f *multipartForm) File(field, path string) {
	f.files = append(f.files, formFile{field: field, path: path})
}

// Encode builds the request body in memory so Content-Length is known.
func (f *multipartForm) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := mw.WriteField(fld.name, fld.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", fld.name, err)
		}
	}

	for _, ff := range f.files {
		if err := writeFilePart(mw, ff); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(mw *multipart.Writer, ff formFile) error {
	file, err := os.Open(ff.path)
	if err != nil {
		return fmt.Errorf("open attachment: %w", err)
	}
	defer file.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(ff.field), quoteEscaper.Replace(filepath.Base(ff.path))))
	h.Set("Content-Type", contentTypeFor(ff.path))

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part %s: %w", ff.field, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy %s: %w", ff.path, err)
	}
	return nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
