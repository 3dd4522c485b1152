package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Bytes serializes the document as indented XML with an XML declaration.
func (s *URLSet) Bytes() ([]byte, error) {
	body, err := xml.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding sitemap: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(xml.Header) + len(body) + 1)
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteTo writes the serialized document to w in a single Write call.
func (s *URLSet) WriteTo(w io.Writer) (int64, error) {
	data, err := s.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// WriteFile writes the document to path.
func (s *URLSet) WriteFile(path string) error {
	data, err := s.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - sitemaps are public
		return fmt.Errorf("writing sitemap: %w", err)
	}
	return nil
}
