// Package imagedata converts uploaded image files into self-describing data
// URIs, usable directly as an image source reference.
package imagedata

import (
	"encoding/base64"
	"io"
	"net/http"
)

// DataURI encodes raw bytes as data:<mime>;base64,<payload>. The content
// type is sniffed from the bytes when the caller supplied none or only the
// generic octet-stream default that multipart uploads carry.
func DataURI(contentType string, data []byte) string {
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// FromReader reads the file to the end and encodes it.
func FromReader(r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return DataURI(contentType, data), nil
}
