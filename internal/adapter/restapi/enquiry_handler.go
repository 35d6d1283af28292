package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	enquiryDomain "loan-portal/internal/domain/enquiry"
	"loan-portal/internal/usecase/enquiry"
	"loan-portal/internal/validation"
)

type EnquiryHandler struct{ uc *enquiry.Usecase }

func NewEnquiryHandler(uc *enquiry.Usecase) *EnquiryHandler { return &EnquiryHandler{uc: uc} }

func (h *EnquiryHandler) Create(c echo.Context) error {
	var in validation.EnquiryInput
	if err := bind(c, &in); err != nil {
		return writeErr(c, err)
	}
	e, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusCreated, e, "Enquiry submitted successfully")
}

func (h *EnquiryHandler) List(c echo.Context) error {
	q, err := parseListQuery(c)
	if err != nil {
		return writeErr(c, err)
	}
	page, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, page, "Enquiries fetched successfully")
}

func (h *EnquiryHandler) Get(c echo.Context) error {
	eid, err := pathID(c, enquiryDomain.ErrNotFound)
	if err != nil {
		return writeErr(c, err)
	}
	e, err := h.uc.Get(c.Request().Context(), eid)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, e, "Enquiry fetched successfully")
}

func (h *EnquiryHandler) Delete(c echo.Context) error {
	eid, err := pathID(c, enquiryDomain.ErrNotFound)
	if err != nil {
		return writeErr(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), eid); err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, nil, "Enquiry deleted successfully")
}
