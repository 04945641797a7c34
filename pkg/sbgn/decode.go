package sbgn

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
)

// rootElement is the local name every SBGN-ML document must start with.
const rootElement = "sbgn"

type document struct {
	XMLName xml.Name
	Maps    []Map `xml:"map"`
}

// Decode reads an SBGN-ML document from r.
//
// Element matching ignores the default SBGN namespace, so files written
// against libsbgn 0.1, 0.2 and 0.3 decode the same way. Annotation blocks are
// matched in the RDF namespace.
//
// Decode returns an error with code [errors.ErrCodeMalformedDocument] if the
// input is not well-formed XML, the root element is not <sbgn>, or the
// document has no <map>. Problems inside individual glyphs or arcs are not
// errors here; the extractor reports them as warnings.
func Decode(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var raw document
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.MalformedDocument(err, "decode SBGN-ML")
	}
	if raw.XMLName.Local != rootElement {
		return nil, errors.MalformedDocument(nil, "root element is <%s>, want <%s>", raw.XMLName.Local, rootElement)
	}
	if len(raw.Maps) == 0 {
		return nil, errors.MalformedDocument(nil, "document has no <map> element")
	}
	return &Document{Maps: raw.Maps}, nil
}

// DecodeBytes decodes an in-memory SBGN-ML document.
func DecodeBytes(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens path and decodes it with [Decode].
func DecodeFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// UnmarshalXML collects every rdf:li below an rdf:RDF element regardless of
// the Description/qualifier/Bag nesting in between.
func (a *Annotation) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Space == RDFNamespace && t.Name.Local == "li" {
				a.References = append(a.References, Reference{Resource: resourceAttr(t.Attr)})
			}
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

func resourceAttr(attrs []xml.Attr) string {
	for _, attr := range attrs {
		if attr.Name.Local != "resource" {
			continue
		}
		if attr.Name.Space == RDFNamespace || attr.Name.Space == "" {
			return attr.Value
		}
	}
	return ""
}
