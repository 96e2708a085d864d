// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/application/usecase/importer"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// ImportController handles the spreadsheet import endpoints.
type ImportController struct {
	spreadsheetReader adapter.SpreadsheetReader
	previewUseCase    *importer.PreviewImportUseCase
	commitUseCase     *importer.CommitImportUseCase
	undoUseCase       *importer.UndoImportUseCase
	maxUploadBytes    int64
}

// NewImportController creates a new import controller instance.
func NewImportController(
	spreadsheetReader adapter.SpreadsheetReader,
	previewUseCase *importer.PreviewImportUseCase,
	commitUseCase *importer.CommitImportUseCase,
	undoUseCase *importer.UndoImportUseCase,
	maxUploadBytes int64,
) *ImportController {
	return &ImportController{
		spreadsheetReader: spreadsheetReader,
		previewUseCase:    previewUseCase,
		commitUseCase:     commitUseCase,
		undoUseCase:       undoUseCase,
		maxUploadBytes:    maxUploadBytes,
	}
}

// Preview handles POST /import/preview requests. The spreadsheet travels as a
// multipart file under the "file" field, the target month under "month_key".
func (c *ImportController) Preview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A spreadsheet file is required",
			Code:  string(domainerror.ErrCodeUnreadableWorkbook),
		})
		return
	}

	if c.maxUploadBytes > 0 && fileHeader.Size > c.maxUploadBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: "Uploaded file exceeds the size limit",
			Code:  string(domainerror.ErrCodeUnreadableWorkbook),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unable to open uploaded file",
			Code:  string(domainerror.ErrCodeUnreadableWorkbook),
		})
		return
	}
	defer file.Close()

	rows, err := c.spreadsheetReader.Read(file, fileHeader.Filename)
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	input := importer.PreviewImportInput{
		UserID:   userID,
		MonthKey: valueobject.MonthKey(ctx.PostForm("month_key")),
		Rows:     rows,
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PreviewImportResponse{
		Columns:      dto.ToColumnMapResponse(output.Columns),
		Rows:         dto.ToImportRowDTOs(output.Rows),
		Duplicates:   dto.ToImportRowDTOs(output.Duplicates),
		ValidCount:   output.ValidCount,
		InvalidCount: output.InvalidCount,
	})
}

// Commit handles POST /import/commit requests.
func (c *ImportController) Commit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CommitImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeNoEligibleRows),
		})
		return
	}

	input := importer.CommitImportInput{
		UserID:         userID,
		MonthKey:       valueobject.MonthKey(req.MonthKey),
		SkipDuplicates: req.SkipDuplicates,
	}
	for _, rowDTO := range req.Rows {
		input.Rows = append(input.Rows, rowDTO.ToImportRow())
	}

	output, err := c.commitUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CommitImportResponse{
		ImportedCount:    output.ImportedCount,
		SkippedInvalid:   output.SkippedInvalid,
		SkippedDuplicate: output.SkippedDuplicate,
		Snapshot:         dto.ToExpenseResponses(output.Snapshot),
	})
}

// Undo handles POST /import/undo requests.
func (c *ImportController) Undo(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UndoImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptySnapshot),
		})
		return
	}

	input := importer.UndoImportInput{
		UserID:   userID,
		MonthKey: valueobject.MonthKey(req.MonthKey),
	}
	for _, expenseReq := range req.Snapshot {
		entity, err := expenseReq.ToExpenseEntity()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format in snapshot: " + err.Error(),
			})
			return
		}
		input.Snapshot = append(input.Snapshot, entity)
	}

	if err := c.undoUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Import undone"})
}

// handleImportError handles import errors and returns appropriate HTTP responses.
func (c *ImportController) handleImportError(ctx *gin.Context, err error) {
	var impErr *domainerror.ImportError
	if errors.As(err, &impErr) {
		statusCode := c.getStatusCodeForImportError(impErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: impErr.Message,
			Code:  string(impErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForImportError maps import error codes to HTTP status codes.
func (c *ImportController) getStatusCodeForImportError(code domainerror.ImportErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnsupportedFileType:
		return http.StatusUnsupportedMediaType
	case domainerror.ErrCodeUnreadableWorkbook,
		domainerror.ErrCodeEmptyWorkbook,
		domainerror.ErrCodeNoEligibleRows,
		domainerror.ErrCodeEmptySnapshot,
		domainerror.ErrCodeImportMonthKey:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
