// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/usecase/debt"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// DebtController handles the installment debt projection endpoint.
type DebtController struct {
	projectionUseCase *debt.BuildProjectionUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(projectionUseCase *debt.BuildProjectionUseCase) *DebtController {
	return &DebtController{
		projectionUseCase: projectionUseCase,
	}
}

// Projection handles GET /debt/projection requests. The reference month and
// year are required query parameters; rate optionally overrides the stored
// exchange rate.
func (c *DebtController) Projection(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month query parameter must be a number",
			Code:  string(domainerror.ErrCodeInvalidReferenceMonth),
		})
		return
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year query parameter must be a number",
			Code:  string(domainerror.ErrCodeInvalidReferenceYear),
		})
		return
	}

	input := debt.BuildProjectionInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	}
	if rateStr := ctx.Query("rate"); rateStr != "" {
		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "rate query parameter must be a decimal number",
			})
			return
		}
		input.ExchangeRate = &rate
	}

	output, err := c.projectionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtProjectionResponse(output))
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
