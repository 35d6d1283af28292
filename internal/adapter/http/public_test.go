package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	mw "loan-portal/internal/adapter/middleware"
	"loan-portal/internal/apiclient"
)

func TestEMICalculator_Defaults(t *testing.T) {
	s := newSite(t)
	rec := s.get("/emi-calculator")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	assertContains(t, rec, "₹10,166.67", "Total Interest")
}

func TestEMICalculator_SliderBounds(t *testing.T) {
	s := newSite(t)
	rec := s.get("/emi-calculator")
	assertContains(t, rec,
		`min="10000" max="10000000" step="10000"`,
		`min="1" max="20" step="0.1"`,
		`min="1" max="360" step="1"`,
	)
}

func TestEMIJSON(t *testing.T) {
	s := newSite(t)

	rec := s.get("/api/emi?amount=100000&rate=8.5&term=60")
	var ok struct {
		Result struct {
			MonthlyInstallment float64 `json:"monthlyInstallment"`
			TotalPayable       float64 `json:"totalPayable"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &ok); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("code=%d err=%v", rec.Code, err)
	}
	if ok.Result.TotalPayable != 610000 {
		t.Fatalf("payable = %v", ok.Result.TotalPayable)
	}

	rec = s.get("/api/emi?amount=100000&rate=8.5&term=0")
	var bad struct {
		Message string `json:"message"`
		Result  struct {
			MonthlyInstallment float64 `json:"monthlyInstallment"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &bad); err != nil {
		t.Fatalf("term=0 must still return finite json: %v (%s)", err, rec.Body)
	}
	if rec.Code != http.StatusUnprocessableEntity || bad.Result.MonthlyInstallment != 0 {
		t.Fatalf("term=0: %d %+v", rec.Code, bad)
	}

	rec = s.get("/api/emi?amount=lots")
	_ = json.Unmarshal(rec.Body.Bytes(), &bad)
	if rec.Code != http.StatusUnprocessableEntity || bad.Message != "Amount must be a number" {
		t.Fatalf("amount=lots: %d %q", rec.Code, bad.Message)
	}
}

func TestApply_ValidationStaysLocal(t *testing.T) {
	s := newSite(t)
	form := validLoanForm(mw.NewSubmissionID())
	form.Set("phone", "12345")
	form.Set("amount", "0")
	rec := s.post("/apply", form)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code = %d", rec.Code)
	}
	assertContains(t, rec, "Phone number must be exactly 10 digits", form.Get("submission_id"))
	if s.api.createdLoans != 0 {
		t.Fatal("invalid form must not reach the api")
	}
}

func TestApply_SubmitAndReplay(t *testing.T) {
	s := newSite(t)
	form := validLoanForm(mw.NewSubmissionID())

	first := s.post("/apply", form)
	if first.Code != http.StatusOK {
		t.Fatalf("code = %d", first.Code)
	}
	assertContains(t, first, "Thank you!", "Submit Another Application", "65f0c1e2a1b2c3d4e5f60718")

	second := s.post("/apply", form)
	if s.api.createdLoans != 1 {
		t.Fatalf("createdLoans = %d, want 1", s.api.createdLoans)
	}
	assertContains(t, second, "Thank you!")

	// a fresh render gets a fresh id
	s.post("/apply", validLoanForm(mw.NewSubmissionID()))
	if s.api.createdLoans != 2 {
		t.Fatalf("createdLoans = %d, want 2", s.api.createdLoans)
	}
}

func TestApply_APIErrorShowsServerMessage(t *testing.T) {
	s := newSite(t)
	s.api.createErr = &apiclient.APIError{Status: http.StatusUnprocessableEntity, Message: "Aadhar number already used"}
	rec := s.post("/apply", validLoanForm(mw.NewSubmissionID()))
	assertContains(t, rec, "Aadhar number already used", `name="aadharNumber"`)

	s.api.createErr = &apiclient.APIError{Status: http.StatusBadGateway}
	rec = s.post("/apply", validLoanForm(mw.NewSubmissionID()))
	assertContains(t, rec, "Failed to submit loan application")
}

func TestApplyPage_CarriesSubmissionID(t *testing.T) {
	s := newSite(t)
	rec := s.get("/apply")
	assertContains(t, rec, `name="submission_id"`, "Personal Loan", "60 months")
}

func TestContact(t *testing.T) {
	s := newSite(t)
	form := url.Values{
		"submission_id": {mw.NewSubmissionID()},
		"name":          {"Ravi"},
		"email":         {"ravi@example.com"},
		"phone":         {"9123456789"},
		"subject":       {"Home loan"},
		"message":       {"Which documents are required?"},
	}
	rec := s.post("/contact", form)
	assertContains(t, rec, "Thank you!")
	s.post("/contact", form)
	if s.api.createdEnquiries != 1 {
		t.Fatalf("createdEnquiries = %d, want 1", s.api.createdEnquiries)
	}

	form.Set("submission_id", mw.NewSubmissionID())
	form.Set("message", "short")
	rec = s.post("/contact", form)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestStaticPages(t *testing.T) {
	s := newSite(t)
	for _, p := range []string{"/", "/about", "/contact"} {
		if rec := s.get(p); rec.Code != http.StatusOK {
			t.Fatalf("%s: code = %d", p, rec.Code)
		}
	}
	rec := s.get("/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown route: %d", rec.Code)
	}
	assertContains(t, rec, "Back to home")
}
