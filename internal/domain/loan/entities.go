package loan

import (
	"time"
)

// Application is a public loan request. Admins may only mark it seen or delete it.
type Application struct {
	ID           string    `gorm:"primaryKey;size:24;column:id" json:"_id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	Phone        string    `gorm:"size:10;index:idx_loan_apps_phone" json:"phone"`
	Email        string    `gorm:"size:255;index:idx_loan_apps_email" json:"email"`
	Address      string    `gorm:"size:300" json:"address"`
	LoanType     string    `gorm:"size:50;column:loan_type" json:"loanType"`
	Amount       float64   `gorm:"type:decimal(14,2)" json:"amount"`
	Duration     int       `gorm:"not null" json:"duration"`
	AadharNumber string    `gorm:"size:12;column:aadhar_number" json:"aadharNumber"`
	IsSeen       bool      `gorm:"column:is_seen;default:false;index:idx_loan_apps_seen" json:"isSeen"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_loan_apps_created" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Application) TableName() string { return "loan_applications" }
