package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead records are create-only. Nothing in this service reads them back,
// updates or deletes them; matching happens downstream.

type TalentSubmission struct {
	ID        uuid.UUID `gorm:"size:36;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Role        string `gorm:"not null" json:"role"`
	LinkedinURL string `gorm:"column:linkedin_url;not null" json:"linkedin_url"`
	UserAgent   string `gorm:"type:text" json:"user_agent"`
}

func (TalentSubmission) TableName() string { return "talent_submissions" }

func (t *TalentSubmission) BeforeCreate(*gorm.DB) error {
	t.ID = ensureID(t.ID)
	return nil
}

type StartupSubmission struct {
	ID        uuid.UUID `gorm:"size:36;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JDLink    string `gorm:"column:jd_link;not null" json:"jd_link"`
	Email     string `gorm:"not null" json:"email"`
	UserAgent string `gorm:"type:text" json:"user_agent"`
}

func (StartupSubmission) TableName() string { return "startup_submissions" }

func (s *StartupSubmission) BeforeCreate(*gorm.DB) error {
	s.ID = ensureID(s.ID)
	return nil
}

type Referral struct {
	ID        uuid.UUID `gorm:"size:36;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ReferrerEmail     string `gorm:"not null" json:"referrer_email"`
	TalentLinkedinURL string `gorm:"column:talent_linkedin_url;not null" json:"talent_linkedin_url"`
	// TalentContact is NULL when the referrer left it blank.
	TalentContact *string `json:"talent_contact"`
	TalentReason  string  `gorm:"type:text" json:"talent_reason"`
	UserAgent     string  `gorm:"type:text" json:"user_agent"`
}

func (Referral) TableName() string { return "referrals" }

func (r *Referral) BeforeCreate(*gorm.DB) error {
	r.ID = ensureID(r.ID)
	return nil
}

func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

// All lists every migrated model.
func All() []any {
	return []any{&TalentSubmission{}, &StartupSubmission{}, &Referral{}}
}
