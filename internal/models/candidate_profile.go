package models

import "time"

// CandidateProfile is a one-to-one extension of User keyed by UserID.
// The unique index guarantees at most one profile per user; every save
// is a full-field overwrite of the existing row.
type CandidateProfile struct {
	BaseModel
	UserID     uint    `gorm:"uniqueIndex" json:"userId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Headline   string  `json:"headline"`
	Bio        string  `json:"bio"`
	Phone      string  `json:"phone"`
	City       string  `json:"city"`
	Province   string  `json:"province"`
	PostalCode string  `json:"postalCode"`
	Address    string  `json:"address"`
	Gender     *Gender `gorm:"type:varchar(10)" json:"gender"`

	DateOfBirth *time.Time `gorm:"type:date" json:"dateOfBirth"`

	Portfolio string `json:"portfolio"`
	Linkedin  string `json:"linkedin"`
	Github    string `json:"github"`
	Website   string `json:"website"`

	// Set true on every successful save, not derived from field
	// completeness.
	IsProfileComplete bool `json:"isProfileComplete"`
}
