package validation

import "strings"

const (
	RoleAdmin    = "ADMIN"
	RoleSubAdmin = "SUB_ADMIN"
)

// LoanTypes are the options offered on the apply form. The field itself is free text.
var LoanTypes = []string{"Personal", "Home", "Auto", "Business"}

// Durations are the month options offered on the apply form.
var Durations = []int{1, 3, 6, 12, 24, 60}

type LoanApplicationInput struct {
	Name         string  `json:"name"         form:"name"         validate:"required,min=2,max=50"`
	Phone        string  `json:"phone"        form:"phone"        validate:"required,phone10"`
	Email        string  `json:"email"        form:"email"        validate:"required,email"`
	Amount       float64 `json:"amount"       form:"amount"       validate:"gt=0"`
	Duration     int     `json:"duration"     form:"duration"     validate:"gt=0"`
	Address      string  `json:"address"      form:"address"      validate:"required,min=10,max=300"`
	LoanType     string  `json:"loanType"     form:"loanType"     validate:"required,max=50"`
	AadharNumber string  `json:"aadharNumber" form:"aadharNumber" validate:"required,aadhar12"`
	IsSeen       bool    `json:"isSeen"       form:"-"`
}

func (in *LoanApplicationInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	in.LoanType = strings.TrimSpace(in.LoanType)
	in.AadharNumber = strings.TrimSpace(in.AadharNumber)
}

type EnquiryInput struct {
	Name    string `json:"name"    form:"name"    validate:"required,min=2,max=50"`
	Email   string `json:"email"   form:"email"   validate:"required,email"`
	Phone   string `json:"phone"   form:"phone"   validate:"required,phone10"`
	Subject string `json:"subject" form:"subject" validate:"required,min=3,max=100"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=1000"`
	IsSeen  bool   `json:"isSeen"  form:"-"`
}

func (in *EnquiryInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
}

type AdminInput struct {
	Name     string `json:"name"     form:"name"     validate:"required,min=2,max=50"`
	Email    string `json:"email"    form:"email"    validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=100"`
	Role     string `json:"role"     form:"role"     validate:"oneof=ADMIN SUB_ADMIN"`
}

func (in *AdminInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Role = strings.TrimSpace(in.Role)
	if in.Role == "" {
		in.Role = RoleSubAdmin
	}
}

// AdminUpdateInput leaves the password unchanged when it is empty.
type AdminUpdateInput struct {
	Name     string `json:"name"               form:"name"     validate:"required,min=2,max=50"`
	Email    string `json:"email"              form:"email"    validate:"required,email"`
	Password string `json:"password,omitempty" form:"password" validate:"omitempty,min=8,max=100"`
	Role     string `json:"role"               form:"role"     validate:"oneof=ADMIN SUB_ADMIN"`
}

func (in *AdminUpdateInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Role = strings.TrimSpace(in.Role)
	if in.Role == "" {
		in.Role = RoleSubAdmin
	}
}

type LoginInput struct {
	Email    string `json:"email"    form:"email"    validate:"required,loosemail"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

func (in *LoginInput) Normalize() { in.Email = strings.TrimSpace(in.Email) }

var messages = map[string]string{
	"name.required": "Name is required",
	"name.min":      "Name must be at least 2 characters long",
	"name.max":      "Name must be at most 50 characters long",

	"email.required": "Email is required",
	"email.email":    "Invalid email address",

	"phone.required": "Phone number is required",
	"phone.phone10":  "Phone number must be exactly 10 digits",

	"amount.number": "Amount must be a number",
	"amount.gt":     "Amount must be greater than zero",

	"duration.number": "Duration must be a number",
	"duration.gt":     "Duration must be a positive number (in months)",

	"address.required": "Address is required",
	"address.min":      "Address must be at least 10 characters",
	"address.max":      "Address must be at most 300 characters",

	"loanType.required": "Loan type is required",
	"loanType.max":      "Loan type must be at most 50 characters",

	"aadharNumber.required": "Aadhar number is required",
	"aadharNumber.aadhar12": "Aadhar number must be a 12-digit number",

	"subject.required": "Subject is required",
	"subject.min":      "Subject must be at least 3 characters",
	"subject.max":      "Subject must be at most 100 characters",

	"message.required": "Message is required",
	"message.min":      "Message must be at least 10 characters long",
	"message.max":      "Message must be at most 1000 characters long",

	"password.required": "Password is required",
	"password.min":      "Password must be at least 8 characters long",
	"password.max":      "Password must be at most 100 characters long",

	"role.oneof": "Role must be ADMIN or SUB_ADMIN",

	"LoginInput.email.loosemail": "Invalid email",
	"LoginInput.password.min":    "Password must be at least 6 characters",

	"amount.gte":  "Principal cannot be negative",
	"rate.gte":    "Interest rate cannot be negative",
	"rate.number": "Interest rate must be a number",
	"term.gt":     "Loan term must be at least 1 month",
	"term.number": "Loan term must be a whole number of months",
}
