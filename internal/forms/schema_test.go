package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RequiredRejectsEmptyAndWhitespace(t *testing.T) {
	for _, schema := range Schemas {
		for _, f := range schema.Fields {
			if !f.Required {
				continue
			}
			for _, raw := range []string{"", "   ", "\t\n"} {
				_, errs := schema.Validate(Values{f.Name: raw})
				require.NotNil(t, errs, "%s.%s with %q", schema.Name, f.Name, raw)
				assert.Equal(t, KindRequired, errs.Kind(f.Name), "%s.%s with %q", schema.Name, f.Name, raw)
			}
		}
	}
}

func TestValidate_LinkedInURL(t *testing.T) {
	cases := []struct {
		value string
		want  ErrorKind
	}{
		{"https://linkedin.com/in/jane", ""},
		{"https://www.LinkedIn.com/in/jane-doe/", ""},
		{"linkedin.com/in/jane", KindInvalidURL},
		{"not a url", KindInvalidURL},
		{"https://example.com/jane", KindDomainMismatch},
		{"https://linkedin.com/company/acme", KindDomainMismatch},
	}

	for _, schema := range []Schema{TalentSchema, ReferralSchema, ApplySchema} {
		for _, tc := range cases {
			_, errs := schema.Validate(Values{"linkedin_url": tc.value})
			assert.Equal(t, tc.want, errs.Kind("linkedin_url"), "%s: %q", schema.Name, tc.value)
		}
	}
}

func TestValidate_Email(t *testing.T) {
	for _, schema := range []Schema{StartupSchema, ReferralSchema} {
		_, errs := schema.Validate(Values{"email": "not-an-email"})
		assert.Equal(t, KindInvalidEmail, errs.Kind("email"), schema.Name)

		_, errs = schema.Validate(Values{"email": "user@example.com"})
		assert.Empty(t, errs.Kind("email"), schema.Name)
	}
}

func TestValidate_NormalizesValues(t *testing.T) {
	got, errs := ReferralSchema.Validate(Values{
		"email":          "  Jane@Example.com ",
		"linkedin_url":   " https://linkedin.com/in/max ",
		"talent_contact": "   ",
		"talent_reason":  " Shipped three products ",
		"unknown":        "dropped",
	})
	require.Nil(t, errs)

	assert.Equal(t, Values{
		"email":          "jane@example.com",
		"linkedin_url":   "https://linkedin.com/in/max",
		"talent_contact": "",
		"talent_reason":  "Shipped three products",
	}, got)
}

func TestValidate_OptionalFieldOnlyTrimmed(t *testing.T) {
	got, errs := ReferralSchema.Validate(Values{
		"email":          "a@b.de",
		"linkedin_url":   "https://linkedin.com/in/max",
		"talent_contact": "  +49 170 000000  ",
		"talent_reason":  "x",
	})
	require.Nil(t, errs)
	assert.Equal(t, "+49 170 000000", got["talent_contact"])
}

func TestValidate_Messages(t *testing.T) {
	_, errs := ApplySchema.Validate(Values{"linkedin_url": "https://example.com"})
	require.NotNil(t, errs)

	assert.Equal(t, "Please enter your first name", errs.Message("first_name"))
	assert.Equal(t, "Must be a LinkedIn URL", errs.Message("linkedin_url"))
	assert.Equal(t, "Role is required", errs.Message("role"))
	assert.Contains(t, errs.Error(), "first_name: required")
}

func TestValidate_MarkupOnlyIsRequired(t *testing.T) {
	out, errs := TalentSchema.Validate(Values{"role": "<img src=x>", "linkedin_url": "https://linkedin.com/in/jane"})
	require.NotNil(t, errs)
	assert.Equal(t, KindRequired, errs.Kind("role"))
	assert.Equal(t, "", out.Get("role"))

	out, errs = ReferralSchema.Validate(Values{
		"email":         "me@example.com",
		"linkedin_url":  "https://linkedin.com/in/jane",
		"talent_reason": "&lt;script&gt;alert(1)&lt;/script&gt;",
	})
	require.NotNil(t, errs)
	assert.Equal(t, KindRequired, errs.Kind("talent_reason"))
	assert.NotContains(t, out.Get("talent_reason"), "<")
}
