package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	mw "loan-portal/internal/adapter/middleware"
	"loan-portal/internal/apiclient"
	"loan-portal/internal/emi"
	"loan-portal/internal/usecase/listing"
	"loan-portal/internal/validation"
)

func (h *Handler) Home(c echo.Context) error {
	return h.render(c, http.StatusOK, "home", view{Title: "Home", Data: emi.Defaults()})
}

func (h *Handler) About(c echo.Context) error {
	return h.render(c, http.StatusOK, "about", view{Title: "About Us"})
}

// bindErrors turns echo binder failures into field messages.
func bindErrors(errs []error) validation.FieldErrors {
	var out validation.FieldErrors
	for _, err := range errs {
		var be *echo.BindingError
		if errors.As(err, &be) && be.Field != "" {
			out = append(out, validation.FieldError{Field: be.Field, Message: validation.TypeMessage(be.Field)})
		}
	}
	return out
}

func parseEMI(c echo.Context) (emi.Input, validation.FieldErrors) {
	in := emi.Defaults()
	b := echo.QueryParamsBinder(c).FailFast(false).
		Float64("amount", &in.Principal).
		Float64("rate", &in.AnnualRate).
		Int("term", &in.TermMonths)
	errs := bindErrors(b.BindErrors())
	if err := in.Validate(); err != nil {
		errs = merge(errs, validation.ToFieldErrors(err))
	}
	return in, errs
}

func (h *Handler) EMICalculator(c echo.Context) error {
	in, errs := parseEMI(c)
	res := emi.Calculate(in)
	return h.render(c, http.StatusOK, "emi", view{
		Title:  "EMI Calculator",
		Errors: errs,
		Data:   emiView{Bounds: emi.SliderBounds(), Input: in, Result: res, Breakdown: res.Breakdown()},
	})
}

// EMIJSON serves the calculator figures for in-page updates.
func (h *Handler) EMIJSON(c echo.Context) error {
	in, errs := parseEMI(c)
	res := emi.Calculate(in)
	body := map[string]any{
		"input":     in,
		"result":    res,
		"breakdown": res.Breakdown(),
		"formatted": map[string]string{
			"monthlyInstallment": emi.FormatINR(res.MonthlyInstallment),
			"totalInterest":      emi.FormatINR(res.TotalInterest),
			"totalPayable":       emi.FormatINR(res.TotalPayable),
		},
	}
	if len(errs) > 0 {
		body["message"] = errs.Error()
		body["errors"] = errs
		return c.JSON(http.StatusUnprocessableEntity, body)
	}
	return c.JSON(http.StatusOK, body)
}

// ---- apply ----

func newApplyView(in validation.LoanApplicationInput) applyView {
	return applyView{
		Form:      in,
		LoanTypes: validation.LoanTypes,
		Durations: validation.Durations,
		Estimate:  emi.EstimateMonthly(in.Amount, in.Duration),
	}
}

func (h *Handler) ApplyPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "apply", view{
		Title:        "Apply for a Loan",
		SubmissionID: mw.NewSubmissionID(),
		Data:         newApplyView(validation.LoanApplicationInput{}),
	})
}

func bindLoanForm(c echo.Context, in *validation.LoanApplicationInput) validation.FieldErrors {
	b := echo.FormFieldBinder(c).FailFast(false).
		String("name", &in.Name).
		String("phone", &in.Phone).
		String("email", &in.Email).
		String("address", &in.Address).
		String("loanType", &in.LoanType).
		String("aadharNumber", &in.AadharNumber).
		Float64("amount", &in.Amount).
		Int("duration", &in.Duration)
	return bindErrors(b.BindErrors())
}

func (h *Handler) SubmitApply(c echo.Context) error {
	var in validation.LoanApplicationInput
	errs := bindLoanForm(c, &in)
	if err := validation.Validate(&in); err != nil {
		errs = merge(errs, validation.ToFieldErrors(err))
	}
	v := view{Title: "Apply for a Loan", SubmissionID: strings.TrimSpace(c.FormValue(mw.FieldSubmissionID))}
	if len(errs) > 0 {
		v.Errors = errs
		v.Data = newApplyView(in)
		return h.render(c, http.StatusUnprocessableEntity, "apply", v)
	}

	ctx := c.Request().Context()
	created, err := h.api.CreateLoan(ctx, in)
	if err != nil {
		v.Flash = flashError(apiclient.Message(err, "Failed to submit loan application"))
		v.Data = newApplyView(in)
		return h.render(c, http.StatusOK, "apply", v)
	}
	mw.MarkAccepted(c)
	h.lists.Invalidate(ctx, listing.ResourceLoans)

	av := newApplyView(in)
	av.Done, av.Submitted = true, created
	v.Flash = flashSuccess("Loan application submitted successfully")
	v.Data = av
	return h.render(c, http.StatusOK, "apply", v)
}

// ApplyDuplicate answers a repeated submission that is still in flight.
func (h *Handler) ApplyDuplicate(c echo.Context) error {
	av := newApplyView(validation.LoanApplicationInput{})
	av.Done = true
	return h.render(c, http.StatusOK, "apply", view{Title: "Apply for a Loan", Data: av})
}

// ---- contact ----

func (h *Handler) ContactPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "contact", view{
		Title:        "Contact Us",
		SubmissionID: mw.NewSubmissionID(),
		Data:         contactView{},
	})
}

func (h *Handler) SubmitContact(c echo.Context) error {
	var in validation.EnquiryInput
	v := view{Title: "Contact Us", SubmissionID: strings.TrimSpace(c.FormValue(mw.FieldSubmissionID))}
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission").SetInternal(err)
	}
	if err := validation.Validate(&in); err != nil {
		v.Errors = validation.ToFieldErrors(err)
		v.Data = contactView{Form: in}
		return h.render(c, http.StatusUnprocessableEntity, "contact", v)
	}

	ctx := c.Request().Context()
	created, err := h.api.CreateEnquiry(ctx, in)
	if err != nil {
		v.Flash = flashError(apiclient.Message(err, "Failed to send enquiry"))
		v.Data = contactView{Form: in}
		return h.render(c, http.StatusOK, "contact", v)
	}
	mw.MarkAccepted(c)
	h.lists.Invalidate(ctx, listing.ResourceEnquiries)

	v.Flash = flashSuccess("Enquiry submitted successfully")
	v.Data = contactView{Done: true, Submitted: created}
	return h.render(c, http.StatusOK, "contact", v)
}

func (h *Handler) ContactDuplicate(c echo.Context) error {
	return h.render(c, http.StatusOK, "contact", view{Title: "Contact Us", Data: contactView{Done: true}})
}
