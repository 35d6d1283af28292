package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"loan-portal/internal/apiclient"
	"loan-portal/internal/infrastructure/cache"
	"loan-portal/internal/session"
	"loan-portal/internal/usecase/listing"
	"loan-portal/internal/validation"
)

const cookieName = "loan_admin_token"

// ----- test doubles -----

// fakeAPI stands in for the REST back end. It satisfies Backend and listing.API.
type fakeAPI struct {
	mu sync.Mutex

	loans       []apiclient.LoanApplication
	totalPages  int
	listErr     error
	getErr      error
	loginErr    error
	createErr   error
	listQueries []apiclient.ListQuery

	enquiryQueries []apiclient.ListQuery
	tokens      []string

	createdLoans     int
	createdEnquiries int
	createdAdmins    int
	deleted          []string
}

func (f *fakeAPI) record(ctx context.Context) {
	f.tokens = append(f.tokens, apiclient.TokenFrom(ctx))
}

func (f *fakeAPI) CreateLoan(ctx context.Context, in validation.LoanApplicationInput) (*apiclient.LoanApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdLoans++
	return &apiclient.LoanApplication{ID: "65f0c1e2a1b2c3d4e5f60718", Name: in.Name}, nil
}

func (f *fakeAPI) ListLoans(ctx context.Context, q apiclient.ListQuery) (*apiclient.LoanPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(ctx)
	f.listQueries = append(f.listQueries, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	tp := max(f.totalPages, 1)
	page := q.Page
	if page > tp {
		return &apiclient.LoanPage{LoanApplications: []apiclient.LoanApplication{}, CurrentPage: page, TotalPages: tp, TotalCount: len(f.loans)}, nil
	}
	return &apiclient.LoanPage{LoanApplications: f.loans, CurrentPage: page, TotalPages: tp, TotalCount: len(f.loans)}, nil
}

func (f *fakeAPI) GetLoan(ctx context.Context, id string) (*apiclient.LoanApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(ctx)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &apiclient.LoanApplication{ID: id, Name: "Asha Rao", Amount: 120000, Duration: 12, IsSeen: true}, nil
}

func (f *fakeAPI) DeleteLoan(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) CreateEnquiry(ctx context.Context, in validation.EnquiryInput) (*apiclient.Enquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdEnquiries++
	return &apiclient.Enquiry{ID: "e1", Name: in.Name}, nil
}

func (f *fakeAPI) ListEnquiries(ctx context.Context, q apiclient.ListQuery) (*apiclient.EnquiryPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(ctx)
	f.enquiryQueries = append(f.enquiryQueries, q)
	return &apiclient.EnquiryPage{Enquiries: []apiclient.Enquiry{{ID: "e1", Name: "Ravi", Subject: "Home loan", Message: "Which documents are required?"}}, CurrentPage: q.Page, TotalPages: 1, TotalEnquiry: 1}, nil
}

func (f *fakeAPI) GetEnquiry(ctx context.Context, id string) (*apiclient.Enquiry, error) {
	return &apiclient.Enquiry{ID: id, Subject: "Home loan", Message: "Which documents are required?"}, nil
}

func (f *fakeAPI) DeleteEnquiry(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) Login(ctx context.Context, in validation.LoginInput) (*apiclient.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &apiclient.LoginResult{Token: "fresh-token"}, nil
}

func (f *fakeAPI) ListAdmins(ctx context.Context) ([]apiclient.Admin, error) {
	return []apiclient.Admin{{ID: "a1", Name: "Root", Email: "root@example.com", Role: "ADMIN"}}, nil
}

func (f *fakeAPI) CreateAdmin(ctx context.Context, in validation.AdminInput) (*apiclient.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdAdmins++
	return &apiclient.Admin{ID: "a2", Name: in.Name, Email: in.Email, Role: in.Role}, nil
}

func (f *fakeAPI) UpdateAdmin(ctx context.Context, id string, in validation.AdminUpdateInput) (*apiclient.Admin, error) {
	return &apiclient.Admin{ID: id, Name: in.Name}, nil
}

func (f *fakeAPI) DeleteAdmin(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

// ----- helpers -----

type site struct {
	e   *echo.Echo
	api *fakeAPI
	mr  *miniredis.Miniredis
}

func newSite(t *testing.T) *site {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	api := &fakeAPI{loans: []apiclient.LoanApplication{{ID: "l1", Name: "Asha Rao", Amount: 120000, Duration: 12}}}
	lists := listing.NewUsecase(api, cache.NewListCache(rdb, 5*time.Minute))
	h := NewHandler(api, lists, session.NewStore(cookieName, false))

	e := echo.New()
	opt := DefaultOptions()
	opt.Redis = rdb
	opt.LoginPerMinute, opt.FormPerMinute = 0, 0
	if err := Register(e, h, opt); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return &site{e: e, api: api, mr: mr}
}

func (s *site) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *site) post(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func token() *http.Cookie { return &http.Cookie{Name: cookieName, Value: "tok"} }

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func validLoanForm(subID string) url.Values {
	return url.Values{
		"submission_id": {subID},
		"name":          {"Asha Rao"},
		"phone":         {"9876543210"},
		"email":         {"asha@example.com"},
		"address":       {"12 MG Road, Bengaluru"},
		"loanType":      {"Home"},
		"amount":        {"120000"},
		"duration":      {"12"},
		"aadharNumber":  {"123412341234"},
	}
}

func assertContains(t *testing.T, rec *httptest.ResponseRecorder, want ...string) {
	t.Helper()
	body := rec.Body.String()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Fatalf("body missing %q:\n%s", w, body)
		}
	}
}
