package forms

// Form names, also used as keys for per-visitor form instances.
const (
	FormTalent   = "talent"
	FormStartup  = "startup"
	FormReferral = "referral"
	FormApply    = "apply"
)

// Table names in the external data store.
const (
	TableTalentSubmissions  = "talent_submissions"
	TableStartupSubmissions = "startup_submissions"
	TableReferrals          = "referrals"
)

var linkedInMessages = map[ErrorKind]string{
	KindRequired:       "Enter your LinkedIn URL",
	KindInvalidURL:     "Enter a valid LinkedIn URL",
	KindDomainMismatch: "Must be a LinkedIn URL",
}

// TalentSchema is the hero form shown to talents.
var TalentSchema = Schema{
	Name:  FormTalent,
	Table: TableTalentSubmissions,
	Fields: []Field{
		{
			Name:        "role",
			Label:       "Role",
			Placeholder: "Enter a role",
			Required:    true,
			PlainText:   true,
			Messages:    map[ErrorKind]string{KindRequired: "Role is required"},
		},
		{
			Name:         "linkedin_url",
			Label:        "LinkedIn URL",
			Placeholder:  "https://linkedin.com/in/your-profile",
			Kind:         URL,
			Required:     true,
			DomainMarker: LinkedInProfileMarker,
			Messages:     linkedInMessages,
		},
	},
}

// StartupSchema is the hero form shown to startups posting a role.
var StartupSchema = Schema{
	Name:  FormStartup,
	Table: TableStartupSubmissions,
	Fields: []Field{
		{
			Name:        "jd_link",
			Label:       "Job description link",
			Placeholder: "https://yourstartup.com/jobs/founding-engineer",
			Kind:        URL,
			Required:    true,
			Messages: map[ErrorKind]string{
				KindRequired:   "Paste a link to the job description",
				KindInvalidURL: "Enter a valid URL",
			},
		},
		{
			Name:        "email",
			Label:       "Work email",
			Placeholder: "you@startup.com",
			Kind:        Email,
			Required:    true,
		},
	},
}

// ReferralSchema is the refer-a-friend form.
var ReferralSchema = Schema{
	Name:  FormReferral,
	Table: TableReferrals,
	Fields: []Field{
		{
			Name:        "email",
			Label:       "Your email",
			Placeholder: "Your email (required → for payout)",
			Kind:        Email,
			Required:    true,
			Lowercase:   true,
		},
		{
			Name:         "linkedin_url",
			Label:        "Talent's LinkedIn URL",
			Placeholder:  "Talent's LinkedIn URL (required)",
			Kind:         URL,
			Required:     true,
			DomainMarker: LinkedInProfileMarker,
			Messages: map[ErrorKind]string{
				KindInvalidURL:     "Enter a valid URL",
				KindDomainMismatch: "Must be a LinkedIn URL",
			},
		},
		{
			Name:        "talent_contact",
			Label:       "Talent contact",
			Placeholder: "Optional: Talent Email or Phone",
			PlainText:   true,
		},
		{
			Name:        "talent_reason",
			Label:       "Why are they exceptional?",
			Placeholder: "What makes them a breakout talent?",
			Required:    true,
			PlainText:   true,
			Messages:    map[ErrorKind]string{KindRequired: "Tell us why they are exceptional"},
		},
	},
}

// ApplySchema is step one of the apply flow.
var ApplySchema = Schema{
	Name:  FormApply,
	Table: TableTalentSubmissions,
	Fields: []Field{
		{
			Name:        "first_name",
			Label:       "First name",
			Placeholder: "Enter your first name",
			Required:    true,
			PlainText:   true,
			Messages:    map[ErrorKind]string{KindRequired: "Please enter your first name"},
		},
		{
			Name:         "linkedin_url",
			Label:        "LinkedIn URL",
			Placeholder:  "https://linkedin.com/in/your-profile",
			Kind:         URL,
			Required:     true,
			DomainMarker: LinkedInProfileMarker,
			Messages:     linkedInMessages,
		},
		{
			Name:      "role",
			Label:     "Role",
			Required:  true,
			Hidden:    true,
			PlainText: true,
			Messages:  map[ErrorKind]string{KindRequired: "Role is required"},
		},
	},
}

// Schemas lists every lead form by name.
var Schemas = map[string]Schema{
	FormTalent:   TalentSchema,
	FormStartup:  StartupSchema,
	FormReferral: ReferralSchema,
	FormApply:    ApplySchema,
}
