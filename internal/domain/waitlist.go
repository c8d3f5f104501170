package domain

// WaitlistEntry represents a waitlist sign-up, including template download
// leads captured by the template wizard
type WaitlistEntry struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:201;not null" json:"name"`
	Email   string  `gorm:"size:255;not null;index" json:"email"`
	Company *string `gorm:"size:200" json:"company"`
	Phone   *string `gorm:"size:32" json:"phone"`
	Message string  `gorm:"type:text;not null" json:"message"`
	Source  string  `gorm:"size:100;not null;index" json:"source"`
	Meta
}

// TableName specifies the table name for WaitlistEntry
func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}
