package core

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// mailEndpoint is the API path for the legacy form-encoded mail send call.
const mailEndpoint = "/api/mail.send.json"

// Destination pairs a legacy recipient address with its display name.
type Destination struct {
	Address string
	Name    string
}

// Mail is a message for the legacy send API. It is a flat structure encoded
// as application/x-www-form-urlencoded rather than JSON.
type Mail struct {
	To          []Destination
	CC          []string
	BCC         []string
	From        string
	Subject     string
	HTML        string
	Text        string
	FromName    string
	ReplyTo     string
	Date        string
	Attachments Fields
	Content     Fields
	Headers     Fields
	XSMTPAPI    string
}

// NewMail constructs a legacy mail with all fields empty.
func NewMail() *Mail {
	return &Mail{
		Attachments: Fields{},
		Content:     Fields{},
		Headers:     Fields{},
	}
}

// AddTo adds a to recipient.
func (m *Mail) AddTo(to Destination) *Mail {
	m.To = append(m.To, to)
	return m
}

// AddCC adds a CC recipient address.
func (m *Mail) AddCC(address string) *Mail {
	m.CC = append(m.CC, address)
	return m
}

// AddBCC adds a BCC recipient address.
func (m *Mail) AddBCC(address string) *Mail {
	m.BCC = append(m.BCC, address)
	return m
}

// SetFrom sets the from address. There is only one from address per mail.
func (m *Mail) SetFrom(address string) *Mail {
	m.From = address
	return m
}

// SetSubject sets the subject of the mail.
func (m *Mail) SetSubject(subject string) *Mail {
	m.Subject = subject
	return m
}

// SetHTML sets the HTML content of the mail.
func (m *Mail) SetHTML(html string) *Mail {
	m.HTML = html
	return m
}

// SetText sets the plain text content of the mail.
func (m *Mail) SetText(text string) *Mail {
	m.Text = text
	return m
}

// SetFromName sets the display name for the from address.
func (m *Mail) SetFromName(name string) *Mail {
	m.FromName = name
	return m
}

// SetReplyTo sets the reply-to address.
func (m *Mail) SetReplyTo(address string) *Mail {
	m.ReplyTo = address
	return m
}

// SetDate sets the date of the mail. This must be a valid RFC 822 timestamp.
func (m *Mail) SetDate(date string) *Mail {
	m.Date = date
	return m
}

// AddAttachment reads the file at path and attaches its contents under the
// path name. The path must be valid UTF-8.
func (m *Mail) AddAttachment(path string) error {
	if !utf8.ValidString(path) {
		return ErrInvalidFilename
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read attachment: %w", err)
	}

	if m.Attachments == nil {
		m.Attachments = Fields{}
	}
	m.Attachments.Set(path, string(data))
	return nil
}

// AddAttachmentContent attaches in-memory contents under the given name.
func (m *Mail) AddAttachmentContent(name, contents string) *Mail {
	if m.Attachments == nil {
		m.Attachments = Fields{}
	}
	m.Attachments.Set(name, contents)
	return m
}

// AddContent adds content for inline images in the mail.
func (m *Mail) AddContent(id, value string) *Mail {
	if m.Content == nil {
		m.Content = Fields{}
	}
	m.Content.Set(id, value)
	return m
}

// AddHeader adds a custom header. These are usually prefixed with 'X' or 'x'
// per the RFC specifications.
func (m *Mail) AddHeader(header, value string) *Mail {
	if m.Headers == nil {
		m.Headers = Fields{}
	}
	m.Headers.Set(header, value)
	return m
}

// SetXSMTPAPI sets the X-SMTPAPI string, a JSON-encoded map or struct.
func (m *Mail) SetXSMTPAPI(value string) *Mail {
	m.XSMTPAPI = value
	return m
}

// headerString serializes the custom headers to a JSON object string, which
// becomes the value of the single headers pair.
func (m *Mail) headerString() (string, error) {
	headers := m.Headers
	if headers == nil {
		headers = Fields{}
	}
	s, err := json.Marshal(headers)
	if err != nil {
		return "", NewEncodeError(err)
	}
	return string(s), nil
}

// formEncoder writes application/x-www-form-urlencoded pairs in insertion
// order. url.Values is not usable here because it sorts keys on encode.
type formEncoder struct {
	b strings.Builder
}

func (f *formEncoder) appendPair(key, value string) {
	if f.b.Len() > 0 {
		f.b.WriteByte('&')
	}
	f.b.WriteString(url.QueryEscape(key))
	f.b.WriteByte('=')
	f.b.WriteString(url.QueryEscape(value))
}

func (f *formEncoder) String() string {
	return f.b.String()
}

// makeFormKey generates the bracketed key for a map-valued form field, such
// as files[report.txt].
func makeFormKey(form, key string) string {
	var b strings.Builder
	b.Grow(len(form) + len(key) + 2)
	b.WriteString(form)
	b.WriteByte('[')
	b.WriteString(key)
	b.WriteByte(']')
	return b.String()
}

// sortedKeys returns the map keys in lexicographic order so that encoding the
// same mail twice yields identical bytes.
func sortedKeys(f Fields) []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode serializes the mail as the legacy form-encoded request body. The
// multi-valued and map fields come first, then the scalar fields, which are
// always emitted even when empty.
func (m *Mail) Encode() ([]byte, error) {
	if len(m.To) == 0 {
		return nil, NewEncodeError(ErrMissingDestination)
	}

	headers, err := m.headerString()
	if err != nil {
		return nil, err
	}

	var enc formEncoder

	for _, to := range m.To {
		enc.appendPair("to[]", to.Address)
	}
	for _, to := range m.To {
		enc.appendPair("toname[]", to.Name)
	}
	for _, cc := range m.CC {
		enc.appendPair("cc[]", cc)
	}
	for _, bcc := range m.BCC {
		enc.appendPair("bcc[]", bcc)
	}
	for _, name := range sortedKeys(m.Attachments) {
		enc.appendPair(makeFormKey("files", name), m.Attachments[name])
	}
	for _, id := range sortedKeys(m.Content) {
		enc.appendPair(makeFormKey("content", id), m.Content[id])
	}

	enc.appendPair("from", m.From)
	enc.appendPair("subject", m.Subject)
	enc.appendPair("html", m.HTML)
	enc.appendPair("text", m.Text)
	enc.appendPair("fromname", m.FromName)
	enc.appendPair("replyto", m.ReplyTo)
	enc.appendPair("date", m.Date)
	enc.appendPair("headers", headers)
	enc.appendPair("x-smtpapi", m.XSMTPAPI)

	return []byte(enc.String()), nil
}

// ContentType implements Payload.
func (m *Mail) ContentType() string {
	return "application/x-www-form-urlencoded"
}

// Endpoint implements Payload.
func (m *Mail) Endpoint() string {
	return mailEndpoint
}
