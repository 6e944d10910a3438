package models

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Email        string   `gorm:"not null" json:"email"`
	Phone        string   `json:"phone,omitempty"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`

	// Relations
	CandidateProfile *CandidateProfile `gorm:"foreignKey:UserID" json:"-"`
}
