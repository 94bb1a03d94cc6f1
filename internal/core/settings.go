package core

import "encoding/json"

// maxGroupsToDisplay is the provider's cap on the number of alternate
// unsubscribe groups shown to a recipient.
const maxGroupsToDisplay = 25

// TrackingSettings configures per-message click, open and subscription
// tracking. The enable fields are tri-state: unset leaves the account default
// in place, while an explicit false disables the feature, so they serialize
// even when false.
type TrackingSettings struct {
	ClickTracking        *ClickTrackingSetting        `json:"click_tracking,omitempty"`
	OpenTracking         *OpenTrackingSetting         `json:"open_tracking,omitempty"`
	SubscriptionTracking *SubscriptionTrackingSetting `json:"subscription_tracking,omitempty"`
}

// ClickTrackingSetting controls link rewriting in the message body.
type ClickTrackingSetting struct {
	Enable     *bool `json:"enable,omitempty"`
	EnableText *bool `json:"enable_text,omitempty"`
}

// OpenTrackingSetting controls the tracking pixel. The substitution tag, when
// set, marks where the pixel is inserted.
type OpenTrackingSetting struct {
	Enable          *bool  `json:"enable,omitempty"`
	SubstitutionTag string `json:"substitution_tag,omitempty"`
}

// SubscriptionTrackingSetting controls the subscription management link.
type SubscriptionTrackingSetting struct {
	Enable *bool `json:"enable,omitempty"`
}

// Setting is a simple enable/disable switch used by several mail settings.
type Setting struct {
	Enable bool `json:"enable"`
}

// NewSetting constructs a switch with the given state.
func NewSetting(enable bool) *Setting {
	return &Setting{Enable: enable}
}

// Footer configures a default footer appended to the message.
type Footer struct {
	Enable bool   `json:"enable"`
	Text   string `json:"text,omitempty"`
	HTML   string `json:"html,omitempty"`
}

// NewFooter constructs a disabled footer.
func NewFooter() *Footer {
	return &Footer{}
}

// SetEnable enables or disables the footer.
func (f *Footer) SetEnable(enable bool) *Footer {
	f.Enable = enable
	return f
}

// SetText sets the plain text footer content.
func (f *Footer) SetText(text string) *Footer {
	f.Text = text
	return f
}

// SetHTML sets the HTML footer content.
func (f *Footer) SetHTML(html string) *Footer {
	f.HTML = html
	return f
}

// BypassFilters opts a message out of the provider's list-suppression checks.
// ListManagement is the list-wide switch; when it is set the granular
// spam/bounce/unsubscribe switches are ignored by the provider and therefore
// not emitted.
type BypassFilters struct {
	ListManagement        *Setting
	SpamManagement        *Setting
	BounceManagement      *Setting
	UnsubscribeManagement *Setting
}

// MailSettings holds per-message overrides of account level mail settings.
// The bypass filter switches flatten into the mail_settings object itself.
type MailSettings struct {
	BypassFilters *BypassFilters
	Footer        *Footer
	SandboxMode   *Setting
}

// NewMailSettings constructs empty mail settings.
func NewMailSettings() *MailSettings {
	return &MailSettings{}
}

// SetBypassFilters sets the bypass filter switches.
func (m *MailSettings) SetBypassFilters(filters *BypassFilters) *MailSettings {
	m.BypassFilters = filters
	return m
}

// SetFooter sets the footer setting.
func (m *MailSettings) SetFooter(footer *Footer) *MailSettings {
	m.Footer = footer
	return m
}

// SetSandboxMode sets the sandbox mode setting. A sandboxed message is
// validated by the provider but never delivered.
func (m *MailSettings) SetSandboxMode(sandbox *Setting) *MailSettings {
	m.SandboxMode = sandbox
	return m
}

// MarshalJSON flattens the bypass filter switches into the mail_settings
// object and enforces the exclusivity of the list-wide switch.
func (m *MailSettings) MarshalJSON() ([]byte, error) {
	var flat struct {
		BypassListManagement        *Setting `json:"bypass_list_management,omitempty"`
		BypassSpamManagement        *Setting `json:"bypass_spam_management,omitempty"`
		BypassBounceManagement      *Setting `json:"bypass_bounce_management,omitempty"`
		BypassUnsubscribeManagement *Setting `json:"bypass_unsubscribe_management,omitempty"`
		Footer                      *Footer  `json:"footer,omitempty"`
		SandboxMode                 *Setting `json:"sandbox_mode,omitempty"`
	}

	if bf := m.BypassFilters; bf != nil {
		if bf.ListManagement != nil {
			flat.BypassListManagement = bf.ListManagement
		} else {
			flat.BypassSpamManagement = bf.SpamManagement
			flat.BypassBounceManagement = bf.BounceManagement
			flat.BypassUnsubscribeManagement = bf.UnsubscribeManagement
		}
	}
	flat.Footer = m.Footer
	flat.SandboxMode = m.SandboxMode

	return json.Marshal(flat)
}

// UnsubscribeGroups configures which unsubscribe group a message belongs to
// and which alternate groups are offered to the recipient. It serializes as
// the message's asm field.
type UnsubscribeGroups struct {
	GroupID         uint32   `json:"group_id"`
	GroupsToDisplay []uint32 `json:"groups_to_display,omitempty"`
}

// NewUnsubscribeGroups constructs the unsubscribe group settings. The display
// list is capped at 25 entries by the provider; exceeding the cap fails here
// rather than at encode time.
func NewUnsubscribeGroups(groupID uint32, groupsToDisplay []uint32) (*UnsubscribeGroups, error) {
	if len(groupsToDisplay) > maxGroupsToDisplay {
		return nil, NewTooManyItemsError("groups_to_display", maxGroupsToDisplay, len(groupsToDisplay))
	}
	return &UnsubscribeGroups{
		GroupID:         groupID,
		GroupsToDisplay: groupsToDisplay,
	}, nil
}
