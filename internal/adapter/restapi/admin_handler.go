package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	adminDomain "loan-portal/internal/domain/admin"
	"loan-portal/internal/usecase/admin"
	"loan-portal/internal/validation"
)

type AdminHandler struct{ uc *admin.Usecase }

func NewAdminHandler(uc *admin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

func (h *AdminHandler) Login(c echo.Context) error {
	var in validation.LoginInput
	if err := bind(c, &in); err != nil {
		return writeErr(c, err)
	}
	out, err := h.uc.Login(c.Request().Context(), in)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, out, "Logged in successfully")
}

func (h *AdminHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, out, "Admins fetched successfully")
}

func (h *AdminHandler) Create(c echo.Context) error {
	var in validation.AdminInput
	if err := bind(c, &in); err != nil {
		return writeErr(c, err)
	}
	a, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusCreated, a, "Admin created successfully")
}

func (h *AdminHandler) Update(c echo.Context) error {
	aid, err := pathID(c, adminDomain.ErrNotFound)
	if err != nil {
		return writeErr(c, err)
	}
	var in validation.AdminUpdateInput
	if err := bind(c, &in); err != nil {
		return writeErr(c, err)
	}
	a, err := h.uc.Update(c.Request().Context(), aid, in)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, a, "Admin updated successfully")
}

func (h *AdminHandler) Delete(c echo.Context) error {
	aid, err := pathID(c, adminDomain.ErrNotFound)
	if err != nil {
		return writeErr(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), aid); err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, nil, "Admin deleted successfully")
}
