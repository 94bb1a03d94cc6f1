package core

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// Payload is implemented by the wire formats the client can dispatch. Each
// implementation knows how to serialize itself, which content type the bytes
// carry and which API endpoint path they are posted to.
type Payload interface {
	// Encode serializes the message into its wire format.
	Encode() ([]byte, error)

	// ContentType returns the MIME type of the encoded body.
	ContentType() string

	// Endpoint returns the API path the body is posted to.
	Endpoint() string
}

// Email represents an address with an optional display name. The address is
// the identity; the name is cosmetic.
type Email struct {
	Address string `json:"email"`
	Name    string `json:"name,omitempty"`
}

// NewEmail constructs an email with the given address.
func NewEmail(address string) *Email {
	return &Email{Address: address}
}

// SetName sets the optional display name.
func (e *Email) SetName(name string) *Email {
	e.Name = name
	return e
}

// Content is one body block of a message. A message holds an ordered sequence
// of content blocks and encoders preserve insertion order, since some clients
// render the last compatible block.
type Content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewContent constructs an empty content block.
func NewContent() *Content {
	return &Content{}
}

// SetContentType sets the MIME type of this content block.
func (c *Content) SetContentType(contentType string) *Content {
	c.Type = contentType
	return c
}

// SetValue sets the body of this content block.
func (c *Content) SetValue(value string) *Content {
	c.Value = value
	return c
}

// Disposition describes how an attachment should be displayed: inline within
// the message, or as a separate download.
type Disposition string

const (
	// DispositionInline displays the attachment automatically within the message.
	DispositionInline Disposition = "inline"

	// DispositionAttachment makes the attachment available as a separate download.
	DispositionAttachment Disposition = "attachment"
)

// Attachment is a file attached to a message. Content and filename are
// required. If the MIME type is unspecified the provider defaults to
// application/octet-stream.
type Attachment struct {
	Content     string      `json:"content"`
	Filename    string      `json:"filename"`
	MIMEType    string      `json:"type,omitempty"`
	Disposition Disposition `json:"disposition,omitempty"`
	ContentID   string      `json:"content_id,omitempty"`
}

// NewAttachment constructs an empty attachment.
func NewAttachment() *Attachment {
	return &Attachment{}
}

// NewInlineAttachment constructs an attachment with an inline disposition and
// a generated content ID that can be referenced from HTML content.
func NewInlineAttachment(filename string, content []byte) *Attachment {
	return NewAttachment().
		SetFilename(filename).
		SetContent(content).
		SetDisposition(DispositionInline).
		SetContentID(uuid.NewString())
}

// SetContent sets the raw body of the attachment. It is base64 encoded for
// the wire.
func (a *Attachment) SetContent(content []byte) *Attachment {
	a.Content = base64.StdEncoding.EncodeToString(content)
	return a
}

// SetBase64Content sets an already base64 encoded body.
func (a *Attachment) SetBase64Content(content string) *Attachment {
	a.Content = content
	return a
}

// SetFilename sets the filename for the attachment.
func (a *Attachment) SetFilename(filename string) *Attachment {
	a.Filename = filename
	return a
}

// SetMIMEType sets an optional MIME type.
func (a *Attachment) SetMIMEType(mimeType string) *Attachment {
	a.MIMEType = mimeType
	return a
}

// SetDisposition sets an optional content disposition.
func (a *Attachment) SetDisposition(d Disposition) *Attachment {
	a.Disposition = d
	return a
}

// SetContentID sets an optional content ID used to reference an inline
// attachment from HTML.
func (a *Attachment) SetContentID(contentID string) *Attachment {
	a.ContentID = contentID
	return a
}
