package core

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

func TestEmailEncode(t *testing.T) {
	tests := []struct {
		name  string
		email *Email
		want  string
	}{
		{
			name:  "address only",
			email: NewEmail("a@example.com"),
			want:  `{"email":"a@example.com"}`,
		},
		{
			name:  "with display name",
			email: NewEmail("a@example.com").SetName("Ada"),
			want:  `{"email":"a@example.com","name":"Ada"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.email)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(b); got != tc.want {
				t.Errorf("email JSON: got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestAttachmentEncode(t *testing.T) {
	a := NewAttachment().
		SetContent([]byte("hello")).
		SetFilename("hello.txt").
		SetMIMEType("text/plain").
		SetDisposition(DispositionAttachment)

	b, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"content":"aGVsbG8=","filename":"hello.txt","type":"text/plain","disposition":"attachment"}`
	if got := string(b); got != want {
		t.Errorf("attachment JSON: got %s, want %s", got, want)
	}
}

func TestAttachmentBase64Content(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("raw bytes"))

	fromRaw := NewAttachment().SetContent([]byte("raw bytes"))
	fromEncoded := NewAttachment().SetBase64Content(encoded)

	if fromRaw.Content != fromEncoded.Content {
		t.Errorf("content mismatch: %s vs %s", fromRaw.Content, fromEncoded.Content)
	}
}

func TestNewInlineAttachment(t *testing.T) {
	a := NewInlineAttachment("logo.png", []byte{0x89, 0x50, 0x4e, 0x47})

	if a.Disposition != DispositionInline {
		t.Errorf("disposition: got %s, want inline", a.Disposition)
	}
	if a.ContentID == "" {
		t.Error("content ID should be generated")
	}
	if a.Filename != "logo.png" {
		t.Errorf("filename: got %s", a.Filename)
	}

	other := NewInlineAttachment("logo.png", nil)
	if a.ContentID == other.ContentID {
		t.Error("content IDs should be unique per attachment")
	}
}
