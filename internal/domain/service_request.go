package domain

// ServiceRequest represents a request for one of the published solutions
type ServiceRequest struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	SolutionID string  `gorm:"size:100;not null;index" json:"solution_id"`
	FullName   string  `gorm:"size:201;not null" json:"full_name"`
	Email      string  `gorm:"size:255;not null;index" json:"email"`
	Company    *string `gorm:"size:200" json:"company"`
	Phone      *string `gorm:"size:32" json:"phone"`
	Message    *string `gorm:"type:text" json:"message"`
	Meta
}

// TableName specifies the table name for ServiceRequest
func (ServiceRequest) TableName() string {
	return "service_requests"
}
