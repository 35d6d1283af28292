package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"loan-portal/internal/validation"
)

type LoanApplication struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	LoanType     string    `json:"loanType"`
	Amount       float64   `json:"amount"`
	Duration     int       `json:"duration"`
	AadharNumber string    `json:"aadharNumber"`
	IsSeen       bool      `json:"isSeen"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type LoanPage struct {
	LoanApplications []LoanApplication `json:"loanApplications"`
	CurrentPage      int               `json:"currentPage"`
	TotalPages       int               `json:"totalPages"`
	TotalCount       int               `json:"totalCount"`
}

type Enquiry struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsSeen    bool      `json:"isSeen"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type EnquiryPage struct {
	Enquiries    []Enquiry `json:"enquiries"`
	CurrentPage  int       `json:"currentPage"`
	TotalPages   int       `json:"totalPages"`
	TotalEnquiry int       `json:"totalEnquiry"`
}

type Admin struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginResult struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

func withID(id string) func(*resty.Request) {
	return func(r *resty.Request) { r.SetPathParam("id", id) }
}

func withBody(v any) func(*resty.Request) {
	return func(r *resty.Request) { r.SetBody(v) }
}

func withQuery(q ListQuery) func(*resty.Request) {
	return func(r *resty.Request) { r.SetQueryParams(q.Params()) }
}

// ---- loans ----

func (c *Client) CreateLoan(ctx context.Context, in validation.LoanApplicationInput) (*LoanApplication, error) {
	out, err := do[LoanApplication](ctx, c, http.MethodPost, "/loan/create", withBody(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListLoans(ctx context.Context, q ListQuery) (*LoanPage, error) {
	out, err := do[LoanPage](ctx, c, http.MethodGet, "/loan/all", withQuery(q))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLoan(ctx context.Context, id string) (*LoanApplication, error) {
	out, err := do[LoanApplication](ctx, c, http.MethodGet, "/loan/{id}", withID(id))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLoan(ctx context.Context, id string) error {
	_, err := do[any](ctx, c, http.MethodDelete, "/loan/{id}", withID(id))
	return err
}

// ---- enquiries ----

func (c *Client) CreateEnquiry(ctx context.Context, in validation.EnquiryInput) (*Enquiry, error) {
	out, err := do[Enquiry](ctx, c, http.MethodPost, "/enquiry/create", withBody(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListEnquiries(ctx context.Context, q ListQuery) (*EnquiryPage, error) {
	out, err := do[EnquiryPage](ctx, c, http.MethodGet, "/enquiry/all", withQuery(q))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEnquiry(ctx context.Context, id string) (*Enquiry, error) {
	out, err := do[Enquiry](ctx, c, http.MethodGet, "/enquiry/{id}", withID(id))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEnquiry(ctx context.Context, id string) error {
	_, err := do[any](ctx, c, http.MethodDelete, "/enquiry/{id}", withID(id))
	return err
}

// ---- admins ----

func (c *Client) Login(ctx context.Context, in validation.LoginInput) (*LoginResult, error) {
	out, err := do[LoginResult](ctx, c, http.MethodPost, "/admin/login", withBody(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAdmins(ctx context.Context) ([]Admin, error) {
	out, err := do[[]Admin](ctx, c, http.MethodGet, "/admin/all", nil)
	return out, err
}

func (c *Client) CreateAdmin(ctx context.Context, in validation.AdminInput) (*Admin, error) {
	out, err := do[Admin](ctx, c, http.MethodPost, "/admin/create", withBody(in))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAdmin(ctx context.Context, id string, in validation.AdminUpdateInput) (*Admin, error) {
	out, err := do[Admin](ctx, c, http.MethodPost, "/admin/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id).SetBody(in)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	_, err := do[any](ctx, c, http.MethodDelete, "/admin/{id}", withID(id))
	return err
}
