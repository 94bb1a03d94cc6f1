package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageEncodeMinimal(t *testing.T) {
	m := NewMessage(NewEmail("g@example.com")).
		SetSubject("Subject").
		AddPersonalization(NewPersonalization(NewEmail("to@example.com"))).
		AddContent(NewContent().SetContentType("text/html").SetValue("Test"))

	body, err := m.Encode()
	require.NoError(t, err)

	want := `{"from":{"email":"g@example.com"},"subject":"Subject",` +
		`"personalizations":[{"to":[{"email":"to@example.com"}]}],` +
		`"content":[{"type":"text/html","value":"Test"}]}`
	assert.Equal(t, want, string(body))
}

func TestMessageEncodeOmitsAbsentFields(t *testing.T) {
	m := NewMessage(NewEmail("g@example.com")).
		AddPersonalization(NewPersonalization(NewEmail("to@example.com")))

	body, err := m.Encode()
	require.NoError(t, err)

	want := `{"from":{"email":"g@example.com"},"subject":"",` +
		`"personalizations":[{"to":[{"email":"to@example.com"}]}]}`
	assert.Equal(t, want, string(body))
	assert.NotContains(t, string(body), "null")
}

func TestMessageEncodeAllOptionalFields(t *testing.T) {
	groups, err := NewUnsubscribeGroups(7, []uint32{1, 2})
	require.NoError(t, err)

	m := NewMessage(NewEmail("g@example.com").SetName("Sender")).
		SetSubject("Subject").
		SetReplyTo(NewEmail("reply@example.com")).
		SetTemplateID("d-123").
		SetIPPoolName("transactional").
		SetASM(groups).
		AddPersonalization(NewPersonalization(NewEmail("to@example.com"))).
		AddContent(NewContent().SetContentType("text/plain").SetValue("hi"))

	body, err := m.Encode()
	require.NoError(t, err)

	want := `{"from":{"email":"g@example.com","name":"Sender"},"subject":"Subject",` +
		`"personalizations":[{"to":[{"email":"to@example.com"}]}],` +
		`"reply_to":{"email":"reply@example.com"},` +
		`"content":[{"type":"text/plain","value":"hi"}],` +
		`"template_id":"d-123",` +
		`"ip_pool_name":"transactional",` +
		`"asm":{"group_id":7,"groups_to_display":[1,2]}}`
	assert.Equal(t, want, string(body))
}

func TestMessageContentOrderPreserved(t *testing.T) {
	m := NewMessage(NewEmail("g@example.com")).
		AddPersonalization(NewPersonalization(NewEmail("to@example.com"))).
		AddContent(NewContent().SetContentType("text/plain").SetValue("plain")).
		AddContent(NewContent().SetContentType("text/html").SetValue("html"))

	body, err := m.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(body),
		`"content":[{"type":"text/plain","value":"plain"},{"type":"text/html","value":"html"}]`)
}

func TestMessageCategoriesSingleAndBulkAgree(t *testing.T) {
	single := NewMessage(NewEmail("g@example.com")).
		AddPersonalization(NewPersonalization(NewEmail("to@example.com"))).
		AddCategory("alpha").
		AddCategory("beta").
		AddCategory("gamma")

	mixed := NewMessage(NewEmail("g@example.com")).
		AddPersonalization(NewPersonalization(NewEmail("to@example.com"))).
		AddCategories("alpha", "beta").
		AddCategory("gamma")

	singleBody, err := single.Encode()
	require.NoError(t, err)
	mixedBody, err := mixed.Encode()
	require.NoError(t, err)

	assert.Equal(t, string(singleBody), string(mixedBody))
	assert.Contains(t, string(singleBody), `"categories":["alpha","beta","gamma"]`)
}

func TestMessageEncodeIdempotent(t *testing.T) {
	p := NewPersonalization(NewEmail("to@example.com")).
		AddHeader("X-One", "1").
		AddHeader("X-Two", "2").
		AddSubstitution("-name-", "Ada")
	m := NewMessage(NewEmail("g@example.com")).
		SetSubject("Subject").
		AddPersonalization(p).
		AddAttachment(NewAttachment().SetFilename("a.txt").SetContent([]byte("hello")))

	first, err := m.Encode()
	require.NoError(t, err)
	second, err := m.Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPersonalizationEncode(t *testing.T) {
	p := NewPersonalization(NewEmail("to@example.com").SetName("To Person")).
		AddCC(NewEmail("cc@example.com")).
		SetSubject("Override").
		SetSendAt(1710000000)
	p.AddHeaders(Fields{"gamma": "3"})
	p.AddHeader("alpha", "1")
	p.AddHeader("beta", "2")

	body, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	// Map keys emit in the encoder's lexicographic order regardless of
	// insertion order.
	want := `{"to":[{"email":"to@example.com","name":"To Person"}],` +
		`"cc":[{"email":"cc@example.com"}],` +
		`"subject":"Override",` +
		`"headers":{"alpha":"1","beta":"2","gamma":"3"},` +
		`"send_at":1710000000}`
	if got := string(body); got != want {
		t.Errorf("personalization JSON: got %s, want %s", got, want)
	}
}

func TestPersonalizationCollectionAddsAccumulate(t *testing.T) {
	p := NewPersonalization(NewEmail("one@example.com")).
		AddTo(NewEmail("two@example.com")).
		AddBCC(NewEmail("bcc1@example.com")).
		AddBCC(NewEmail("bcc2@example.com"))
	p.AddCustomArgs(Fields{"batch": "42"})
	p.AddCustomArg("shard", "7")

	assert.Len(t, p.To, 2)
	assert.Len(t, p.BCC, 2)
	assert.Equal(t, Fields{"batch": "42", "shard": "7"}, p.CustomArgs)
}

func TestAddDynamicTemplateDataJSONObject(t *testing.T) {
	p := NewPersonalization(NewEmail("to@example.com"))
	err := p.AddDynamicTemplateDataJSON([]byte(`{"name":"Ada","count":2}`))
	require.NoError(t, err)

	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"dynamic_template_data":{"count":2,"name":"Ada"}`)
}

func TestAddDynamicTemplateDataJSONRejectsNonObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"array", `[1,2,3]`},
		{"string", `"flat"`},
		{"number", `42`},
		{"bool", `true`},
		{"null", `null`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPersonalization(NewEmail("to@example.com"))
			err := p.AddDynamicTemplateDataJSON([]byte(tc.raw))
			assert.ErrorIs(t, err, ErrInvalidTemplateValue)
			assert.Nil(t, p.DynamicTemplateData)
		})
	}
}

func TestAddDynamicTemplateDataJSONMalformed(t *testing.T) {
	p := NewPersonalization(NewEmail("to@example.com"))
	err := p.AddDynamicTemplateDataJSON([]byte(`{"name":`))

	var encodeErr *EncodeError
	assert.True(t, errors.As(err, &encodeErr))
}

func TestAddDynamicTemplateDataMerges(t *testing.T) {
	p := NewPersonalization(NewEmail("to@example.com"))
	p.AddDynamicTemplateData(Fields{"name": "Ada"})
	require.NoError(t, p.AddDynamicTemplateDataJSON([]byte(`{"count":2}`)))
	p.AddDynamicTemplateDataValue("tags", []string{"a", "b"})

	assert.Equal(t, "Ada", p.DynamicTemplateData["name"])
	assert.Equal(t, float64(2), p.DynamicTemplateData["count"])
	assert.Equal(t, []string{"a", "b"}, p.DynamicTemplateData["tags"])
}
