package domain

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	FullName       string  `gorm:"size:201;not null" json:"full_name"`
	FirstName      string  `gorm:"size:100;not null" json:"first_name"`
	LastName       string  `gorm:"size:100;not null" json:"last_name"`
	Email          string  `gorm:"size:255;not null;index" json:"email"`
	Company        *string `gorm:"size:200" json:"company"`
	Subject        *string `gorm:"size:200" json:"subject"`
	Message        string  `gorm:"type:text;not null" json:"message"`
	PrivacyConsent bool    `gorm:"not null;default:false" json:"privacy_consent"`
	Meta
}

// TableName specifies the table name for ContactSubmission
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
