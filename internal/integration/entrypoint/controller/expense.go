// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/application/usecase/expense"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	addUseCase    *expense.AddExpensesUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	clearUseCase  *expense.ClearExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	addUseCase *expense.AddExpensesUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	clearUseCase *expense.ClearExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
		clearUseCase:  clearUseCase,
	}
}

// List handles GET /expenses requests. With a month query parameter the
// response holds that single month; without it, every month.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := expense.ListExpensesInput{UserID: userID}
	if monthStr := ctx.Query("month"); monthStr != "" {
		monthKey := valueobject.MonthKey(monthStr)
		input.MonthKey = &monthKey
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	months := make([]dto.MonthExpensesResponse, 0, len(output.Months))
	for monthKey, expenses := range output.Months {
		months = append(months, dto.MonthExpensesResponse{
			MonthKey: monthKey.String(),
			Expenses: dto.ToExpenseResponses(expenses),
		})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].MonthKey > months[j].MonthKey
	})

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{Months: months})
}

// Add handles POST /expenses requests.
func (c *ExpenseController) Add(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AddExpensesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyExpenseList),
		})
		return
	}

	input := expense.AddExpensesInput{
		UserID:   userID,
		MonthKey: valueobject.MonthKey(req.MonthKey),
	}
	for _, expenseReq := range req.Expenses {
		entity, err := expenseReq.ToExpenseEntity()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format: " + err.Error(),
			})
			return
		}
		input.Expenses = append(input.Expenses, entity)
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddExpensesResponse{AddedCount: output.AddedCount})
}

// Delete handles DELETE /expenses/:monthKey/:index requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense index",
		})
		return
	}

	input := expense.DeleteExpenseInput{
		UserID:   userID,
		MonthKey: valueobject.MonthKey(ctx.Param("monthKey")),
		Index:    index,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ClearMonth handles DELETE /expenses/:monthKey requests.
func (c *ExpenseController) ClearMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := expense.ClearExpensesInput{
		UserID:   userID,
		MonthKey: valueobject.MonthKey(ctx.Param("monthKey")),
	}

	if err := c.clearUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ClearAll handles DELETE /expenses requests.
func (c *ExpenseController) ClearAll(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := expense.ClearExpensesInput{
		UserID: userID,
		All:    true,
	}

	if err := c.clearUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidMonthKey,
		domainerror.ErrCodeEmptyExpenseList:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
