package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanDomain "loan-portal/internal/domain/loan"
	"loan-portal/internal/usecase/loan"
	"loan-portal/internal/validation"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

func (h *LoanHandler) Create(c echo.Context) error {
	var in validation.LoanApplicationInput
	if err := bind(c, &in); err != nil {
		return writeErr(c, err)
	}
	a, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusCreated, a, "Loan application submitted successfully")
}

func (h *LoanHandler) List(c echo.Context) error {
	q, err := parseListQuery(c)
	if err != nil {
		return writeErr(c, err)
	}
	page, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, page, "Loan applications fetched successfully")
}

func (h *LoanHandler) Get(c echo.Context) error {
	lid, err := pathID(c, loanDomain.ErrNotFound)
	if err != nil {
		return writeErr(c, err)
	}
	a, err := h.uc.Get(c.Request().Context(), lid)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, a, "Loan application fetched successfully")
}

func (h *LoanHandler) Delete(c echo.Context) error {
	lid, err := pathID(c, loanDomain.ErrNotFound)
	if err != nil {
		return writeErr(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), lid); err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, nil, "Loan application deleted successfully")
}
