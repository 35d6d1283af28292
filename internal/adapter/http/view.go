package http

import (
	"net/url"
	"strconv"

	"loan-portal/internal/apiclient"
	"loan-portal/internal/emi"
	"loan-portal/internal/pagination"
	"loan-portal/internal/session"
	"loan-portal/internal/validation"
)

// view is the data handed to every page template.
type view struct {
	Title        string
	Flash        *session.Flash
	Admin        bool
	Errors       validation.FieldErrors
	SubmissionID string
	Data         any
}

type emiView struct {
	Bounds    emi.Bounds
	Input     emi.Input
	Result    emi.Result
	Breakdown []emi.Slice
}

type applyView struct {
	Form      validation.LoanApplicationInput
	LoanTypes []string
	Durations []int
	Estimate  float64
	Done      bool
	Submitted *apiclient.LoanApplication
}

type contactView struct {
	Form      validation.EnquiryInput
	Done      bool
	Submitted *apiclient.Enquiry
}

type loginView struct {
	Form validation.LoginInput
}

type listView struct {
	Base       string
	Query      apiclient.ListQuery
	SeenFilter string
	Pager      pagination.Pager
	Loans      []apiclient.LoanApplication
	Enquiries  []apiclient.Enquiry
}

// PageURL links to page p, carrying the filters and the page it was clicked from.
func (v listView) PageURL(p int) string {
	vals := url.Values{}
	vals.Set("page", strconv.Itoa(p))
	vals.Set("from", strconv.Itoa(v.Pager.Current))
	if v.Query.Limit > 0 && v.Query.Limit != pagination.DefaultLimit {
		vals.Set("limit", strconv.Itoa(v.Query.Limit))
	}
	if v.Query.SearchQuery != "" {
		vals.Set("searchQuery", v.Query.SearchQuery)
	}
	if v.SeenFilter != "" {
		vals.Set("isSeen", v.SeenFilter)
	}
	if v.Query.Date != "" {
		vals.Set("date", v.Query.Date)
	}
	return v.Base + "?" + vals.Encode()
}

type loanDetailView struct {
	Loan     *apiclient.LoanApplication
	Estimate float64
}

type usersView struct {
	Admins []apiclient.Admin
	Form   validation.AdminInput
	Roles  []string
}

var roles = []string{validation.RoleAdmin, validation.RoleSubAdmin}
