package domain

// NewsletterSubscription represents a newsletter sign-up. Email is unique;
// a repeated sign-up is treated as already subscribed.
type NewsletterSubscription struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Email  string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Source string `gorm:"size:100;not null;default:'footer'" json:"source"`
	Meta
}

// TableName specifies the table name for NewsletterSubscription
func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}
