package domain

import "time"

// Solution is a published accounting service offering
type Solution struct {
	ID          uint       `gorm:"primaryKey" json:"-" yaml:"-"`
	Slug        string     `gorm:"size:100;not null;uniqueIndex" json:"slug" yaml:"slug"`
	Title       string     `gorm:"size:200;not null" json:"title" yaml:"title"`
	Summary     string     `gorm:"type:text" json:"summary" yaml:"summary"`
	Body        string     `gorm:"type:text" json:"body,omitempty" yaml:"body"`
	Category    string     `gorm:"size:100" json:"category" yaml:"category"`
	SortOrder   int        `gorm:"not null;default:0" json:"sort_order" yaml:"sort_order"`
	Published   bool       `gorm:"not null;default:false;index" json:"-" yaml:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty" yaml:"published_at"`
}

// TableName specifies the table name for Solution
func (Solution) TableName() string {
	return "solutions"
}

// Insight is a published article
type Insight struct {
	ID          uint       `gorm:"primaryKey" json:"-" yaml:"-"`
	Slug        string     `gorm:"size:150;not null;uniqueIndex" json:"slug" yaml:"slug"`
	Title       string     `gorm:"size:200;not null" json:"title" yaml:"title"`
	Excerpt     string     `gorm:"type:text" json:"excerpt" yaml:"excerpt"`
	Body        string     `gorm:"type:text" json:"body,omitempty" yaml:"body"`
	Author      string     `gorm:"size:100" json:"author" yaml:"author"`
	Published   bool       `gorm:"not null;default:false;index" json:"-" yaml:"published"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty" yaml:"published_at"`
}

// TableName specifies the table name for Insight
func (Insight) TableName() string {
	return "insights"
}

// Template is a downloadable spreadsheet or document offered behind the
// template wizard
type Template struct {
	ID          uint   `gorm:"primaryKey" json:"-" yaml:"-"`
	Slug        string `gorm:"size:150;not null;uniqueIndex" json:"slug" yaml:"slug"`
	Title       string `gorm:"size:200;not null" json:"title" yaml:"title"`
	Description string `gorm:"type:text" json:"description" yaml:"description"`
	PreviewURL  string `gorm:"size:500" json:"preview_url" yaml:"preview_url"`
	FileURL     string `gorm:"size:500;not null" json:"-" yaml:"file_url"`
	SortOrder   int    `gorm:"not null;default:0" json:"sort_order" yaml:"sort_order"`
	Published   bool   `gorm:"not null;default:false;index" json:"-" yaml:"published"`
}

// TableName specifies the table name for Template
func (Template) TableName() string {
	return "templates"
}

// Policy is a legal page such as the privacy policy or terms of service
type Policy struct {
	ID        uint      `gorm:"primaryKey" json:"-" yaml:"-"`
	Slug      string    `gorm:"size:100;not null;uniqueIndex" json:"slug" yaml:"slug"`
	Title     string    `gorm:"size:200;not null" json:"title" yaml:"title"`
	Body      string    `gorm:"type:text;not null" json:"body" yaml:"body"`
	Published bool      `gorm:"not null;default:false" json:"-" yaml:"published"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// TableName specifies the table name for Policy
func (Policy) TableName() string {
	return "policies"
}
