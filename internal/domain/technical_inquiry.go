package domain

// TechnicalInquiry represents a detailed accounting or tax question
type TechnicalInquiry struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	ReferenceID    string  `gorm:"size:36;not null;uniqueIndex" json:"reference_id"`
	Title          *string `gorm:"size:20" json:"title"`
	FullName       string  `gorm:"size:201;not null" json:"full_name"`
	Email          string  `gorm:"size:255;not null;index" json:"email"`
	Phone          *string `gorm:"size:32" json:"phone"`
	Company        *string `gorm:"size:200" json:"company"`
	JobTitle       *string `gorm:"size:200" json:"job_title"`
	Subject        string  `gorm:"size:200;not null" json:"subject"`
	Subcategory    *string `gorm:"size:200" json:"subcategory"`
	Background     string  `gorm:"type:text;not null" json:"background"`
	Question       *string `gorm:"type:text" json:"question"`
	AdditionalInfo *string `gorm:"type:text" json:"additional_info"`
	PrivacyConsent bool    `gorm:"not null;default:false" json:"privacy_consent"`
	TermsConsent   bool    `gorm:"not null;default:false" json:"terms_consent"`
	Meta
}

// TableName specifies the table name for TechnicalInquiry
func (TechnicalInquiry) TableName() string {
	return "technical_inquiries"
}
