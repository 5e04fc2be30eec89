package worldpay

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/kevin07696/worldpay-gateway/internal/domain"
)

// The gateway validates submissions against its DTD, so the serialized
// document must carry these exact identifiers.
const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`
	docType   = `<!DOCTYPE paymentService PUBLIC "-//WorldPay//DTD WorldPay PaymentService v1//EN" "http://dtd.worldpay.com/paymentService_v1.dtd">`
)

// Serialize renders the request document as a full XML document with the
// Worldpay DOCTYPE and UTF-8 encoding declared.
func Serialize(doc *RequestDocument) ([]byte, error) {
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeRequestInvalid, "failed to serialize request", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteByte('\n')
	buf.WriteString(docType)
	buf.WriteByte('\n')
	buf.Write(body)

	return buf.Bytes(), nil
}

// Element is one node of a parsed response or notification document.
type Element struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Element
}

// Attr returns the named attribute value, or "" if absent.
func (e *Element) Attr(name string) string {
	if e == nil {
		return ""
	}
	return e.Attrs[name]
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	if e == nil {
		return false
	}
	_, ok := e.Attrs[name]
	return ok
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find walks a chain of child names, returning nil when any link is missing.
func (e *Element) Find(names ...string) *Element {
	cur := e
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// UnmarshalXML builds the element subtree by consuming decoder tokens.
func (e *Element) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	e.Name = start.Name.Local
	e.Attrs = make(map[string]string, len(start.Attr))
	for _, attr := range start.Attr {
		e.Attrs[attr.Name.Local] = attr.Value
	}

	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			e.Children = append(e.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			e.Text = strings.TrimSpace(text.String())
			return nil
		}
	}
}

// Deserialize parses a response or notification body into its reply/notify
// wrapper element. Empty input, non-well-formed XML and a missing wrapper all
// yield RESPONSE_MALFORMED; low-level parser faults are never propagated.
func Deserialize(body []byte) (*Element, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, domain.ErrEmptyResponse
	}

	decoder := xml.NewDecoder(bytes.NewReader(body))

	root, err := decodeRoot(decoder)
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeResponseMalformed, "non-XML response body received", err)
	}

	for _, child := range root.Children {
		if child.Name == "reply" || child.Name == "notify" {
			return child, nil
		}
	}

	return nil, domain.NewDomainError(domain.ErrorCodeResponseMalformed, "reply or notify element not found")
}

// decodeRoot skips prolog tokens (declaration, DOCTYPE, comments) and decodes
// the document element.
func decodeRoot(d *xml.Decoder) (*Element, error) {
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			root := &Element{}
			if err := root.UnmarshalXML(d, start); err != nil {
				return nil, err
			}
			return root, nil
		}
	}
}
