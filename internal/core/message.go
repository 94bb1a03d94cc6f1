package core

import (
	"encoding/json"
)

// messageEndpoint is the API path for the v3 JSON mail send call.
const messageEndpoint = "/v3/mail/send"

// Message is a complete v3 mail send request. It is composed of many smaller
// structures used to customize the message. Field declaration order is the
// JSON key order on the wire; optional fields are omitted entirely when
// absent, never emitted as null.
type Message struct {
	From             *Email             `json:"from"`
	Subject          string             `json:"subject"`
	Personalizations []*Personalization `json:"personalizations"`
	ReplyTo          *Email             `json:"reply_to,omitempty"`
	Content          []*Content         `json:"content,omitempty"`
	Attachments      []*Attachment      `json:"attachments,omitempty"`
	TemplateID       string             `json:"template_id,omitempty"`
	Categories       []string           `json:"categories,omitempty"`
	IPPoolName       string             `json:"ip_pool_name,omitempty"`
	ASM              *UnsubscribeGroups `json:"asm,omitempty"`
	MailSettings     *MailSettings      `json:"mail_settings,omitempty"`
	TrackingSettings *TrackingSettings  `json:"tracking_settings,omitempty"`
}

// NewMessage constructs a message with the given from address.
func NewMessage(from *Email) *Message {
	return &Message{From: from}
}

// SetFrom sets the from address. There is only one from address per message.
func (m *Message) SetFrom(from *Email) *Message {
	m.From = from
	return m
}

// SetSubject sets the subject of the message.
func (m *Message) SetSubject(subject string) *Message {
	m.Subject = subject
	return m
}

// SetReplyTo sets the optional reply-to address.
func (m *Message) SetReplyTo(replyTo *Email) *Message {
	m.ReplyTo = replyTo
	return m
}

// SetTemplateID sets the provider-side template to render the message with.
func (m *Message) SetTemplateID(templateID string) *Message {
	m.TemplateID = templateID
	return m
}

// SetIPPoolName sets the IP pool the message is sent from.
func (m *Message) SetIPPoolName(name string) *Message {
	m.IPPoolName = name
	return m
}

// AddPersonalization adds a personalization block to the message.
func (m *Message) AddPersonalization(p *Personalization) *Message {
	m.Personalizations = append(m.Personalizations, p)
	return m
}

// AddContent appends a content block. Insertion order is preserved on the
// wire.
func (m *Message) AddContent(c *Content) *Message {
	m.Content = append(m.Content, c)
	return m
}

// AddAttachment appends an attachment to the message.
func (m *Message) AddAttachment(a *Attachment) *Message {
	m.Attachments = append(m.Attachments, a)
	return m
}

// AddCategory appends a single category to the message.
func (m *Message) AddCategory(category string) *Message {
	m.Categories = append(m.Categories, category)
	return m
}

// AddCategories appends several categories at once. Mixing AddCategory and
// AddCategories calls yields the same list as the equivalent single-add
// sequence.
func (m *Message) AddCategories(categories ...string) *Message {
	m.Categories = append(m.Categories, categories...)
	return m
}

// SetASM sets the unsubscribe group settings.
func (m *Message) SetASM(groups *UnsubscribeGroups) *Message {
	m.ASM = groups
	return m
}

// SetMailSettings sets the per-message mail setting overrides.
func (m *Message) SetMailSettings(settings *MailSettings) *Message {
	m.MailSettings = settings
	return m
}

// SetTrackingSettings sets the per-message tracking configuration.
func (m *Message) SetTrackingSettings(settings *TrackingSettings) *Message {
	m.TrackingSettings = settings
	return m
}

// Encode serializes the message as the v3 JSON request body.
func (m *Message) Encode() ([]byte, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return nil, NewEncodeError(err)
	}
	return body, nil
}

// ContentType implements Payload.
func (m *Message) ContentType() string {
	return "application/json"
}

// Endpoint implements Payload.
func (m *Message) Endpoint() string {
	return messageEndpoint
}

// Personalization groups recipients and their per-recipient overrides within
// one message. It has to contain at least one to address; all other fields
// are optional and omitted from the wire when absent.
type Personalization struct {
	To                  []*Email       `json:"to"`
	CC                  []*Email       `json:"cc,omitempty"`
	BCC                 []*Email       `json:"bcc,omitempty"`
	Subject             string         `json:"subject,omitempty"`
	Headers             Fields         `json:"headers,omitempty"`
	Substitutions       Fields         `json:"substitutions,omitempty"`
	CustomArgs          Fields         `json:"custom_args,omitempty"`
	DynamicTemplateData map[string]any `json:"dynamic_template_data,omitempty"`
	SendAt              uint64         `json:"send_at,omitempty"`
}

// NewPersonalization constructs a personalization block with its first to
// address, so a constructed block always satisfies the non-empty to
// invariant.
func NewPersonalization(to *Email) *Personalization {
	return &Personalization{To: []*Email{to}}
}

// AddTo adds another to address.
func (p *Personalization) AddTo(to *Email) *Personalization {
	p.To = append(p.To, to)
	return p
}

// AddCC adds a CC address.
func (p *Personalization) AddCC(cc *Email) *Personalization {
	p.CC = append(p.CC, cc)
	return p
}

// AddBCC adds a BCC address.
func (p *Personalization) AddBCC(bcc *Email) *Personalization {
	p.BCC = append(p.BCC, bcc)
	return p
}

// SetSubject sets a subject override for this personalization.
func (p *Personalization) SetSubject(subject string) *Personalization {
	p.Subject = subject
	return p
}

// SetSendAt schedules the send for the given epoch seconds.
func (p *Personalization) SetSendAt(sendAt uint64) *Personalization {
	p.SendAt = sendAt
	return p
}

// AddHeader adds a single custom header.
func (p *Personalization) AddHeader(key, value string) *Personalization {
	if p.Headers == nil {
		p.Headers = Fields{}
	}
	p.Headers.Set(key, value)
	return p
}

// AddHeaders merges the given headers into the existing ones.
func (p *Personalization) AddHeaders(headers Fields) *Personalization {
	if p.Headers == nil {
		p.Headers = Fields{}
	}
	p.Headers.merge(headers)
	return p
}

// AddSubstitution adds a single substitution tag.
func (p *Personalization) AddSubstitution(key, value string) *Personalization {
	if p.Substitutions == nil {
		p.Substitutions = Fields{}
	}
	p.Substitutions.Set(key, value)
	return p
}

// AddSubstitutions merges the given substitutions into the existing ones.
func (p *Personalization) AddSubstitutions(substitutions Fields) *Personalization {
	if p.Substitutions == nil {
		p.Substitutions = Fields{}
	}
	p.Substitutions.merge(substitutions)
	return p
}

// AddCustomArg adds a single custom argument.
func (p *Personalization) AddCustomArg(key, value string) *Personalization {
	if p.CustomArgs == nil {
		p.CustomArgs = Fields{}
	}
	p.CustomArgs.Set(key, value)
	return p
}

// AddCustomArgs merges the given custom arguments into the existing ones.
func (p *Personalization) AddCustomArgs(args Fields) *Personalization {
	if p.CustomArgs == nil {
		p.CustomArgs = Fields{}
	}
	p.CustomArgs.merge(args)
	return p
}

// AddDynamicTemplateData merges string fields into the dynamic template data.
func (p *Personalization) AddDynamicTemplateData(fields Fields) *Personalization {
	if p.DynamicTemplateData == nil {
		p.DynamicTemplateData = map[string]any{}
	}
	for k, v := range fields {
		p.DynamicTemplateData[k] = v
	}
	return p
}

// AddDynamicTemplateDataValue merges a single structured value into the
// dynamic template data.
func (p *Personalization) AddDynamicTemplateDataValue(key string, value any) *Personalization {
	if p.DynamicTemplateData == nil {
		p.DynamicTemplateData = map[string]any{}
	}
	p.DynamicTemplateData[key] = value
	return p
}

// AddDynamicTemplateDataJSON merges raw JSON into the dynamic template data.
// Only an object can be merged: a well-formed document whose top level is an
// array or scalar fails with ErrInvalidTemplateValue, while malformed JSON is
// reported as an encode error.
func (p *Personalization) AddDynamicTemplateDataJSON(raw []byte) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return NewEncodeError(err)
	}

	object, ok := value.(map[string]any)
	if !ok {
		return ErrInvalidTemplateValue
	}

	if p.DynamicTemplateData == nil {
		p.DynamicTemplateData = map[string]any{}
	}
	for k, v := range object {
		p.DynamicTemplateData[k] = v
	}
	return nil
}
