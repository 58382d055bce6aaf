package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"loanflow/internal/domain/apperr"
)

var statusByKind = map[apperr.Kind]int{
	apperr.KindNotFound:               http.StatusNotFound,
	apperr.KindValidation:             http.StatusBadRequest,
	apperr.KindPlafondInactive:        http.StatusUnprocessableEntity,
	apperr.KindIneligiblePlafond:      http.StatusUnprocessableEntity,
	apperr.KindAmountExceedsLimit:     http.StatusUnprocessableEntity,
	apperr.KindTenorExceedsLimit:      http.StatusUnprocessableEntity,
	apperr.KindNoSuitablePlafond:      http.StatusUnprocessableEntity,
	apperr.KindInvalidStateTransition: http.StatusConflict,
	apperr.KindAlreadyReviewed:        http.StatusConflict,
	apperr.KindAlreadyApproved:        http.StatusConflict,
	apperr.KindAlreadyDisbursed:       http.StatusConflict,
	apperr.KindDuplicatePlafond:       http.StatusConflict,
}

// writeError maps an error onto its HTTP status. Internal errors are logged
// and their details withheld from the client.
func writeError(c echo.Context, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		slog.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: string(apperr.KindInternal)})
	}
	status, ok := statusByKind[ae.Kind]
	if !ok {
		slog.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: string(apperr.KindInternal)})
	}
	return c.JSON(status, ErrorResponse{Error: ae.Error(), Code: string(ae.Kind)})
}

// normalizer is implemented by requests that canonicalise fields before validation.
type normalizer interface{ normalize() }

// bindAndValidate decodes the body into req and runs struct validation.
// A non-nil return has already been written to the response.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if n, ok := req.(normalizer); ok {
		n.normalize()
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    string(apperr.KindValidation),
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

func pathID(c echo.Context) (uint64, error) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.New(apperr.KindValidation, "id must be a positive integer")
	}
	return n, nil
}
