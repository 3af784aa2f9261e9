package http

import (
	"net/http"

	"loanflow/internal/adapter/middleware"
	"loanflow/internal/domain/messaging"
	"loanflow/internal/usecase/decision"
	"loanflow/internal/usecase/loanapp"
	"loanflow/internal/usecase/loanlist"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	create    *loanapp.Usecase
	list      *loanlist.Usecase
	processor *decision.Processor
}

func NewLoanHandler(create *loanapp.Usecase, list *loanlist.Usecase, proc *decision.Processor) *LoanHandler {
	return &LoanHandler{create: create, list: list, processor: proc}
}

type createLoanReq struct {
	Amount   float64 `json:"amount"   validate:"required,gt=0,dec2"`
	LoanTerm int     `json:"loanTerm" validate:"required,gt=0"`
	Email    string  `json:"email"    validate:"required,email"`
	DNI      string  `json:"dni"      validate:"required,dni"`
	LoanType string  `json:"loanType" validate:"required"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing credentials"})
	}
	in := loanapp.CreateLoanInput{
		Amount:       req.Amount,
		TermMonths:   req.LoanTerm,
		Email:        req.Email,
		DNI:          req.DNI,
		LoanTypeName: req.LoanType,
	}
	caller := loanapp.Caller{UserID: claims.UserID, DNI: claims.DNI}

	data, err := h.create.Create(c.Request().Context(), in, caller)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, data)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	page := parseSafe(c.QueryParam("start"), 0)
	size := parseSafe(c.QueryParam("limit"), 20)
	filters := c.QueryParams()["status"]

	result, err := h.list.Execute(c.Request().Context(), page, size, filters)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

type updateLoanReq struct {
	LoanID string `json:"idLoan" validate:"required,hex32"`
	Status string `json:"status" validate:"required"`
}

// UpdateLoan is the advisor's manual decision path; it runs the same
// processor the queue listener uses.
func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	cmd := messaging.ManualDecision{LoanID: req.LoanID, Status: req.Status}
	d, err := h.processor.ProcessManual(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"loan_id": d.LoanID,
		"status":  d.Status,
	})
}
