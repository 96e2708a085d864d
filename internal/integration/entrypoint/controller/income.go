// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/application/usecase/income"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase     *income.ListIncomesUseCase
	getMonthUseCase *income.GetMonthIncomesUseCase
	setMonthUseCase *income.SetMonthIncomesUseCase
	createUseCase   *income.CreateIncomeUseCase
	updateUseCase   *income.UpdateIncomeUseCase
	deleteUseCase   *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	getMonthUseCase *income.GetMonthIncomesUseCase,
	setMonthUseCase *income.SetMonthIncomesUseCase,
	createUseCase *income.CreateIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:     listUseCase,
		getMonthUseCase: getMonthUseCase,
		setMonthUseCase: setMonthUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), income.ListIncomesInput{UserID: userID})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IncomeListResponse{
		Incomes: dto.ToIncomeResponses(output.Incomes),
	})
}

// GetMonth handles GET /incomes/month/:monthKey requests.
func (c *IncomeController) GetMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	monthKey := valueobject.MonthKey(ctx.Param("monthKey"))
	output, err := c.getMonthUseCase.Execute(ctx.Request.Context(), income.GetMonthIncomesInput{
		UserID:   userID,
		MonthKey: monthKey,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthIncomesResponse{
		MonthKey:   monthKey.String(),
		Incomes:    dto.ToIncomeResponses(output.Incomes),
		Overridden: output.Overridden,
	})
}

// SetMonth handles PUT /incomes/month/:monthKey requests, replacing the
// month's override set. An empty list removes the override.
func (c *IncomeController) SetMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetMonthIncomesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := income.SetMonthIncomesInput{
		UserID:   userID,
		MonthKey: valueobject.MonthKey(ctx.Param("monthKey")),
	}
	for _, incomeReq := range req.Incomes {
		entity, err := toIncomeEntity(userID, incomeReq)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format: " + err.Error(),
				Code:  string(domainerror.ErrCodeInvalidIncomeAmount),
			})
			return
		}
		input.Incomes = append(input.Incomes, entity)
	}

	if err := c.setMonthUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Month incomes updated"})
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingIncomeDescription),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidIncomeAmount),
		})
		return
	}

	recurring := true
	if req.Recurring != nil {
		recurring = *req.Recurring
	}

	input := income.CreateIncomeInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      amount,
		Currency:    entity.Currency(req.Currency),
		Responsible: req.Responsible,
		Recurring:   recurring,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// Update handles PATCH /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	update := adapter.IncomeUpdate{
		Description: req.Description,
		Responsible: req.Responsible,
		Recurring:   req.Recurring,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidIncomeAmount),
			})
			return
		}
		update.Amount = &amount
	}
	if req.Currency != nil {
		currency := entity.Currency(*req.Currency)
		update.Currency = &currency
	}

	input := income.UpdateIncomeInput{
		UserID: userID,
		ID:     incomeID,
		Update: update,
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Income updated"})
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	input := income.DeleteIncomeInput{
		UserID: userID,
		ID:     incomeID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toIncomeEntity(userID uuid.UUID, req dto.CreateIncomeRequest) (*entity.Income, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, err
	}
	recurring := false
	if req.Recurring != nil {
		recurring = *req.Recurring
	}
	return entity.NewIncome(
		userID,
		req.Description,
		amount,
		entity.Currency(req.Currency),
		req.Responsible,
		recurring,
	), nil
}

// handleIncomeError handles income errors and returns appropriate HTTP responses.
func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	var incErr *domainerror.IncomeError
	if errors.As(err, &incErr) {
		statusCode := c.getStatusCodeForIncomeError(incErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: incErr.Message,
			Code:  string(incErr.Code),
		})
		return
	}

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
}

// getStatusCodeForIncomeError maps income error codes to HTTP status codes.
func (c *IncomeController) getStatusCodeForIncomeError(code domainerror.IncomeErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingIncomeDescription,
		domainerror.ErrCodeInvalidIncomeAmount,
		domainerror.ErrCodeInvalidCurrency:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
