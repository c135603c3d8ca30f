package modio

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"sort"

	"github.com/modio/go-modio/pkg/request"
)

// FormFile is a binary attachment of a multipart request body.
type FormFile struct {
	// Field is the form field name, for example "filedata" or "logo".
	Field string
	// Name is the file name reported to the server.
	Name string
	// Content is the raw file content.
	Content []byte
}

// withMultipartBody encodes fields and file attachments to a multipart body
// and sets it to the request together with the matching Content-Type header.
// The body is encoded once, the resulting bytes are rewindable on retry.
func withMultipartBody(req request.HTTPRequest, fields map[string]string, files ...FormFile) (request.HTTPRequest, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// Deterministic field order
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, fmt.Errorf(`cannot write form field "%s": %w`, k, err)
		}
	}

	for _, f := range files {
		fw, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, fmt.Errorf(`cannot create form file "%s": %w`, f.Field, err)
		}
		if _, err := fw.Write(f.Content); err != nil {
			return nil, fmt.Errorf(`cannot write form file "%s": %w`, f.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return req.WithBody(buf.Bytes()).WithContentType(w.FormDataContentType()), nil
}
