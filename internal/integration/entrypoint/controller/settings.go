// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/usecase/settings"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles the settings endpoints.
type SettingsController struct {
	getRateUseCase *settings.GetExchangeRateUseCase
	setRateUseCase *settings.SetExchangeRateUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getRateUseCase *settings.GetExchangeRateUseCase,
	setRateUseCase *settings.SetExchangeRateUseCase,
) *SettingsController {
	return &SettingsController{
		getRateUseCase: getRateUseCase,
		setRateUseCase: setRateUseCase,
	}
}

// GetExchangeRate handles GET /settings/exchange-rate requests.
func (c *SettingsController) GetExchangeRate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getRateUseCase.Execute(ctx.Request.Context(), settings.GetExchangeRateInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ExchangeRateResponse{Rate: output.Rate.String()})
}

// SetExchangeRate handles PUT /settings/exchange-rate requests.
func (c *SettingsController) SetExchangeRate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetExchangeRateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNonPositiveExchangeRate),
		})
		return
	}

	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid rate format",
			Code:  string(domainerror.ErrCodeNonPositiveExchangeRate),
		})
		return
	}

	input := settings.SetExchangeRateInput{
		UserID: userID,
		Rate:   rate,
	}

	if err := c.setRateUseCase.Execute(ctx.Request.Context(), input); err != nil {
		var setErr *domainerror.SettingsError
		if errors.As(err, &setErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: setErr.Message,
				Code:  string(setErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ExchangeRateResponse{Rate: rate.String()})
}
