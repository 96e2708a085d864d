// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/application/usecase/summary"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles the month summary endpoint.
type SummaryController struct {
	summaryUseCase *summary.GetMonthSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(summaryUseCase *summary.GetMonthSummaryUseCase) *SummaryController {
	return &SummaryController{
		summaryUseCase: summaryUseCase,
	}
}

// Get handles GET /summary requests.
func (c *SummaryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	monthKey := valueobject.MonthKey(ctx.Query("month"))
	input := summary.GetMonthSummaryInput{
		UserID:   userID,
		MonthKey: monthKey,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var expErr *domainerror.ExpenseError
		if errors.As(err, &expErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: expErr.Message,
				Code:  string(expErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthSummaryResponse(monthKey.String(), output))
}
