package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-portal/internal/apiclient"
	"loan-portal/internal/emi"
	"loan-portal/internal/pagination"
	"loan-portal/internal/session"
	"loan-portal/internal/usecase/listing"
	"loan-portal/internal/validation"
)

const (
	loansPath     = "/admin/loans"
	enquiriesPath = "/admin/enquiries"
	usersPath     = "/admin/users"
)

// ---- session ----

func (h *Handler) LoginPage(c echo.Context) error {
	if h.sess.Token(c) != "" {
		return c.Redirect(http.StatusFound, session.HomePath)
	}
	return h.render(c, http.StatusOK, "login", view{Title: "Admin Login", Data: loginView{}})
}

// Login renders api failures itself: a 401 here means bad credentials, not an expired session.
func (h *Handler) Login(c echo.Context) error {
	var in validation.LoginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission").SetInternal(err)
	}
	v := view{Title: "Admin Login"}
	if err := validation.Validate(&in); err != nil {
		v.Errors = validation.ToFieldErrors(err)
		v.Data = loginView{Form: validation.LoginInput{Email: in.Email}}
		return h.render(c, http.StatusUnprocessableEntity, "login", v)
	}
	res, err := h.api.Login(c.Request().Context(), in)
	if err != nil || res.Token == "" {
		v.Flash = flashError(apiclient.Message(err, "Login failed"))
		v.Data = loginView{Form: validation.LoginInput{Email: in.Email}}
		return h.render(c, http.StatusOK, "login", v)
	}
	h.sess.Set(c, res.Token)
	session.SetFlash(c, session.FlashSuccess, "Logged in successfully")
	return c.Redirect(http.StatusSeeOther, session.HomePath)
}

func (h *Handler) Logout(c echo.Context) error {
	h.sess.Clear(c)
	session.SetFlash(c, session.FlashSuccess, "Logged out")
	return c.Redirect(http.StatusSeeOther, session.LoginPath)
}

func (h *Handler) Dashboard(c echo.Context) error {
	return h.render(c, http.StatusOK, "dashboard", view{Title: "Dashboard", Admin: true})
}

// ---- lists ----

// listQuery reads the table filters. Unparseable numbers fall back to defaults.
func listQuery(c echo.Context) (q apiclient.ListQuery, seen string, from int) {
	q = apiclient.ListQuery{Page: 1, Limit: pagination.DefaultLimit}
	_ = echo.QueryParamsBinder(c).
		Int("page", &q.Page).
		Int("limit", &q.Limit).
		Int("from", &from).
		String("searchQuery", &q.SearchQuery).
		String("date", &q.Date).
		BindError()
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = pagination.DefaultLimit
	}
	q.Limit = min(q.Limit, pagination.MaxLimit)
	switch seen = c.QueryParam("isSeen"); seen {
	case "true", "false":
		b := seen == "true"
		q.IsSeen = &b
	default:
		seen = ""
	}
	return q, seen, from
}

// settle resolves a request past the last page. The pager stays on from, the
// page the link was clicked on, or on the last page when from is unusable.
func settle(requested, from, totalPages int) (int, bool) {
	if totalPages <= 0 || requested <= totalPages {
		return requested, false
	}
	base := from
	if base < 1 || base > totalPages {
		base = totalPages
	}
	return pagination.New(base, totalPages, 0, 0).Go(requested).Current, true
}

func (h *Handler) Loans(c echo.Context) error {
	ctx := c.Request().Context()
	q, seen, from := listQuery(c)
	v := view{Title: "Loan Applications", Admin: true}

	page, err := h.lists.Loans(ctx, q)
	if err == nil {
		if p, moved := settle(q.Page, from, page.TotalPages); moved {
			q.Page = p
			page, err = h.lists.Loans(ctx, q)
		}
	}
	if isUnauthorized(err) {
		return err
	}
	lv := listView{Base: loansPath, Query: q, SeenFilter: seen}
	if err != nil {
		v.Flash = flashError(apiclient.Message(err, "Failed to fetch loan applications"))
		lv.Pager = pagination.New(1, 0, 0, q.Limit)
	} else {
		lv.Loans = page.LoanApplications
		lv.Pager = pagination.New(page.CurrentPage, page.TotalPages, page.TotalCount, q.Limit)
	}
	v.Data = lv
	return h.render(c, http.StatusOK, "loans", v)
}

func (h *Handler) LoanDetail(c echo.Context) error {
	ctx := c.Request().Context()
	a, err := h.api.GetLoan(ctx, c.Param("id"))
	if isUnauthorized(err) {
		return err
	}
	if err != nil {
		session.SetFlash(c, session.FlashError, apiclient.Message(err, "Failed to fetch loan application"))
		return c.Redirect(http.StatusSeeOther, loansPath)
	}
	// the api marks it seen, so cached pages now show a stale badge
	h.lists.Invalidate(ctx, listing.ResourceLoans)
	return h.render(c, http.StatusOK, "loan_detail", view{
		Title: "Loan Application",
		Admin: true,
		Data:  loanDetailView{Loan: a, Estimate: emi.EstimateMonthly(a.Amount, a.Duration)},
	})
}

func (h *Handler) DeleteLoan(c echo.Context) error {
	err := h.lists.DeleteLoan(c.Request().Context(), c.Param("id"))
	if isUnauthorized(err) {
		return err
	}
	if err != nil {
		session.SetFlash(c, session.FlashError, apiclient.Message(err, "Failed to delete loan application"))
	} else {
		session.SetFlash(c, session.FlashSuccess, "Loan application deleted successfully")
	}
	return c.Redirect(http.StatusSeeOther, loansPath)
}

func (h *Handler) Enquiries(c echo.Context) error {
	ctx := c.Request().Context()
	q, seen, from := listQuery(c)
	v := view{Title: "Enquiries", Admin: true}

	page, err := h.lists.Enquiries(ctx, q)
	if err == nil {
		if p, moved := settle(q.Page, from, page.TotalPages); moved {
			q.Page = p
			page, err = h.lists.Enquiries(ctx, q)
		}
	}
	if isUnauthorized(err) {
		return err
	}
	lv := listView{Base: enquiriesPath, Query: q, SeenFilter: seen}
	if err != nil {
		v.Flash = flashError(apiclient.Message(err, "Failed to fetch enquiries"))
		lv.Pager = pagination.New(1, 0, 0, q.Limit)
	} else {
		lv.Enquiries = page.Enquiries
		lv.Pager = pagination.New(page.CurrentPage, page.TotalPages, page.TotalEnquiry, q.Limit)
	}
	v.Data = lv
	return h.render(c, http.StatusOK, "enquiries", v)
}

func (h *Handler) EnquiryDetail(c echo.Context) error {
	ctx := c.Request().Context()
	e, err := h.api.GetEnquiry(ctx, c.Param("id"))
	if isUnauthorized(err) {
		return err
	}
	if err != nil {
		session.SetFlash(c, session.FlashError, apiclient.Message(err, "Failed to fetch enquiry"))
		return c.Redirect(http.StatusSeeOther, enquiriesPath)
	}
	h.lists.Invalidate(ctx, listing.ResourceEnquiries)
	return h.render(c, http.StatusOK, "enquiry_detail", view{Title: "Enquiry", Admin: true, Data: e})
}

func (h *Handler) DeleteEnquiry(c echo.Context) error {
	err := h.lists.DeleteEnquiry(c.Request().Context(), c.Param("id"))
	if isUnauthorized(err) {
		return err
	}
	if err != nil {
		session.SetFlash(c, session.FlashError, apiclient.Message(err, "Failed to delete enquiry"))
	} else {
		session.SetFlash(c, session.FlashSuccess, "Enquiry deleted successfully")
	}
	return c.Redirect(http.StatusSeeOther, enquiriesPath)
}

// ---- admin users ----

func (h *Handler) usersPage(c echo.Context, status int, v view, form validation.AdminInput) error {
	admins, err := h.api.ListAdmins(c.Request().Context())
	if isUnauthorized(err) {
		return err
	}
	if err != nil && v.Flash == nil {
		v.Flash = flashError(apiclient.Message(err, "Failed to fetch admins"))
	}
	form.Password = ""
	v.Title, v.Admin = "Admin Users", true
	v.Data = usersView{Admins: admins, Form: form, Roles: roles}
	return h.render(c, status, "users", v)
}

func (h *Handler) Users(c echo.Context) error {
	return h.usersPage(c, http.StatusOK, view{}, validation.AdminInput{Role: validation.RoleSubAdmin})
}

func (h *Handler) CreateUser(c echo.Context) error {
	var in validation.AdminInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission").SetInternal(err)
	}
	if err := validation.Validate(&in); err != nil {
		return h.usersPage(c, http.StatusUnprocessableEntity, view{Errors: validation.ToFieldErrors(err)}, in)
	}
	_, err := h.api.CreateAdmin(c.Request().Context(), in)
	if isUnauthorized(err) {
		return err
	}
	if err != nil {
		return h.usersPage(c, http.StatusOK, view{Flash: flashError(apiclient.Message(err, "Failed to create admin"))}, in)
	}
	session.SetFlash(c, session.FlashSuccess, "Admin created successfully")
	return c.Redirect(http.StatusSeeOther, usersPath)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	var in validation.AdminUpdateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission").SetInternal(err)
	}
	if err := validation.Validate(&in); err != nil {
		session.SetFlash(c, session.FlashError, validation.ToFieldErrors(err).Error())
		return c.Redirect(http.StatusSeeOther, usersPath)
	}
	_, err := h.api.UpdateAdmin(c.Request().Context(), c.Param("id"), in)
	if isUnauthorized(err) {
		return err
	}
	if err != nil {
		session.SetFlash(c, session.FlashError, apiclient.Message(err, "Failed to update admin"))
	} else {
		session.SetFlash(c, session.FlashSuccess, "Admin updated successfully")
	}
	return c.Redirect(http.StatusSeeOther, usersPath)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	err := h.api.DeleteAdmin(c.Request().Context(), c.Param("id"))
	if isUnauthorized(err) {
		return err
	}
	if err != nil {
		session.SetFlash(c, session.FlashError, apiclient.Message(err, "Failed to delete admin"))
	} else {
		session.SetFlash(c, session.FlashSuccess, "Admin deleted successfully")
	}
	return c.Redirect(http.StatusSeeOther, usersPath)
}
