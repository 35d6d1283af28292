package enquiry

import "time"

// Enquiry is a contact-form submission.
type Enquiry struct {
	ID        string    `gorm:"primaryKey;size:24;column:id" json:"_id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     string    `gorm:"size:255;index:idx_enquiries_email" json:"email"`
	Phone     string    `gorm:"size:10" json:"phone"`
	Subject   string    `gorm:"size:100" json:"subject"`
	Message   string    `gorm:"size:1000" json:"message"`
	IsSeen    bool      `gorm:"column:is_seen;default:false;index:idx_enquiries_seen" json:"isSeen"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_enquiries_created" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Enquiry) TableName() string { return "enquiries" }
