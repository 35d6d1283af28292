package validation

import (
	"errors"
	"strings"
	"testing"
)

func validLoan() *LoanApplicationInput {
	return &LoanApplicationInput{
		Name:         "Asha Verma",
		Phone:        "9876543210",
		Email:        "asha@example.com",
		Amount:       5000,
		Duration:     6,
		Address:      "12 MG Road, Bengaluru",
		LoanType:     "Personal",
		AadharNumber: "123412341234",
	}
}

func fieldErrs(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T (%v)", err, err)
	}
	return fe
}

func TestLoan_Valid(t *testing.T) {
	if err := Validate(validLoan()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPhone_ExactlyTenDigits(t *testing.T) {
	cases := map[string]bool{
		"9876543210":  true,
		"987654321":   false,
		"98765432101": false,
		"98765x3210":  false,
		"+919876543":  false,
	}
	for phone, ok := range cases {
		in := validLoan()
		in.Phone = phone
		err := Validate(in)
		if ok && err != nil {
			t.Errorf("%q: unexpected error %v", phone, err)
		}
		if !ok {
			if err == nil {
				t.Errorf("%q: expected error", phone)
				continue
			}
			if got := fieldErrs(t, err).Get("phone"); got != "Phone number must be exactly 10 digits" {
				t.Errorf("%q: message = %q", phone, got)
			}
		}
	}
}

func TestAadhar_ExactlyTwelveDigits(t *testing.T) {
	for _, a := range []string{"12341234123", "1234123412345", "12341234123a"} {
		in := validLoan()
		in.AadharNumber = a
		err := Validate(in)
		if err == nil {
			t.Fatalf("%q: expected error", a)
		}
		if got := fieldErrs(t, err).Get("aadharNumber"); got != "Aadhar number must be a 12-digit number" {
			t.Fatalf("%q: message = %q", a, got)
		}
	}
	in := validLoan()
	in.AadharNumber = " 123412341234 "
	if err := Validate(in); err != nil {
		t.Fatalf("trimmed aadhar should pass: %v", err)
	}
}

func TestAmount_MustBePositive(t *testing.T) {
	for _, amt := range []float64{0, -1, -5000.5} {
		in := validLoan()
		in.Amount = amt
		err := Validate(in)
		if err == nil {
			t.Fatalf("amount %v: expected error", amt)
		}
		if got := fieldErrs(t, err).Get("amount"); got != "Amount must be greater than zero" {
			t.Fatalf("amount %v: message = %q", amt, got)
		}
	}
	for _, amt := range []float64{0.01, 1, 50000, 1e9} {
		in := validLoan()
		in.Amount = amt
		if err := Validate(in); err != nil {
			t.Fatalf("amount %v: unexpected %v", amt, err)
		}
	}
}

func TestLoan_MultipleFieldErrors(t *testing.T) {
	in := &LoanApplicationInput{Name: "  A ", Duration: -1}
	fe := fieldErrs(t, Validate(in))
	for field, want := range map[string]string{
		"name":         "Name must be at least 2 characters long",
		"phone":        "Phone number is required",
		"email":        "Email is required",
		"duration":     "Duration must be a positive number (in months)",
		"address":      "Address is required",
		"loanType":     "Loan type is required",
		"aadharNumber": "Aadhar number is required",
	} {
		if got := fe.Get(field); got != want {
			t.Errorf("%s: got %q, want %q", field, got, want)
		}
	}
	if fe.Error() == "" {
		t.Fatal("Error() should return the first message")
	}
}

func TestEnquiry(t *testing.T) {
	in := &EnquiryInput{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Phone:   "9123456789",
		Subject: "Hi",
		Message: "too short",
	}
	fe := fieldErrs(t, Validate(in))
	if fe.Get("subject") != "Subject must be at least 3 characters" {
		t.Fatalf("subject: %q", fe.Get("subject"))
	}
	if fe.Get("message") != "Message must be at least 10 characters long" {
		t.Fatalf("message: %q", fe.Get("message"))
	}
	in.Subject, in.Message = "Home loan", "What documents do I need?"
	if err := Validate(in); err != nil {
		t.Fatalf("unexpected %v", err)
	}
}

func TestAdmin_DefaultRoleAndPassword(t *testing.T) {
	in := &AdminInput{Name: "Ops", Email: "ops@example.com", Password: "short"}
	fe := fieldErrs(t, Validate(in))
	if fe.Get("password") != "Password must be at least 8 characters long" {
		t.Fatalf("password: %q", fe.Get("password"))
	}
	if in.Role != RoleSubAdmin {
		t.Fatalf("role default = %q", in.Role)
	}

	in.Password = "longenough"
	in.Role = "ROOT"
	if got := fieldErrs(t, Validate(in)).Get("role"); !strings.Contains(got, "ADMIN") {
		t.Fatalf("role message = %q", got)
	}
}

func TestAdminUpdate_PasswordOptional(t *testing.T) {
	in := &AdminUpdateInput{Name: "Ops", Email: "ops@example.com", Role: RoleAdmin}
	if err := Validate(in); err != nil {
		t.Fatalf("empty password should be allowed: %v", err)
	}
	in.Password = "short"
	if err := Validate(in); err == nil {
		t.Fatal("short password should be rejected")
	}
}

func TestLogin_Messages(t *testing.T) {
	fe := fieldErrs(t, Validate(&LoginInput{Email: "no-at-sign", Password: "12345"}))
	if fe.Get("email") != "Invalid email" {
		t.Fatalf("email: %q", fe.Get("email"))
	}
	if fe.Get("password") != "Password must be at least 6 characters" {
		t.Fatalf("password: %q", fe.Get("password"))
	}
	if err := Validate(&LoginInput{Email: "a@b", Password: "123456"}); err != nil {
		t.Fatalf("unexpected %v", err)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected %+v", fe)
	}
}

func TestTypeMessage(t *testing.T) {
	if TypeMessage("amount") != "Amount must be a number" {
		t.Fatal("amount type message")
	}
	if TypeMessage("foo") != "foo must be a number" {
		t.Fatal("fallback type message")
	}
}
