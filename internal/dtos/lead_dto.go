package dtos

import "github.com/justsurfingit/breakout-talents/internal/forms"

// Requests bind from both HTML forms and JSON bodies. Field rules live in the
// form schemas, so no binding tags are set here.

type TalentSubmissionRequest struct {
	Role        string `form:"role" json:"role"`
	LinkedInURL string `form:"linkedin_url" json:"linkedin_url"`
}

func (r TalentSubmissionRequest) Values() forms.Values {
	return forms.Values{"role": r.Role, "linkedin_url": r.LinkedInURL}
}

type StartupSubmissionRequest struct {
	JDLink string `form:"jd_link" json:"jd_link"`
	Email  string `form:"email" json:"email"`
}

func (r StartupSubmissionRequest) Values() forms.Values {
	return forms.Values{"jd_link": r.JDLink, "email": r.Email}
}

type ReferralRequest struct {
	Email         string `form:"email" json:"email"`
	LinkedInURL   string `form:"linkedin_url" json:"linkedin_url"`
	TalentContact string `form:"talent_contact" json:"talent_contact"`
	TalentReason  string `form:"talent_reason" json:"talent_reason"`
}

func (r ReferralRequest) Values() forms.Values {
	return forms.Values{
		"email":          r.Email,
		"linkedin_url":   r.LinkedInURL,
		"talent_contact": r.TalentContact,
		"talent_reason":  r.TalentReason,
	}
}

type ApplyRequest struct {
	FirstName   string `form:"first_name" json:"first_name"`
	LinkedInURL string `form:"linkedin_url" json:"linkedin_url"`
	Role        string `form:"role" json:"role"`
}

// Values omits an empty role so the prefilled hidden value is kept.
func (r ApplyRequest) Values() forms.Values {
	v := forms.Values{"first_name": r.FirstName, "linkedin_url": r.LinkedInURL}
	if r.Role != "" {
		v["role"] = r.Role
	}
	return v
}

// Valuer is implemented by every lead request.
type Valuer interface {
	Values() forms.Values
}

// SubmissionResponse is returned by the JSON lead endpoints.
type SubmissionResponse struct {
	Success     bool              `json:"success"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}
