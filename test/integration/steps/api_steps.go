package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	body := fmt.Sprintf(`{"email":%q,"name":"Test User","password":%q}`, email, password)
	resp, err := http.Post(t.server.URL+"/api/v1/auth/register", "application/json", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to register user, status %d: %s", resp.StatusCode, string(payload))
	}
	return nil
}

func (t *testContext) iAmLoggedInAs(email, password string) error {
	if err := t.aUserExistsWithEmailAndPassword(email, password); err != nil {
		return err
	}

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	resp, err := http.Post(t.server.URL+"/api/v1/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to log in, status %d: %s", resp.StatusCode, string(payload))
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(payload, &auth); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}

	t.accessToken = auth.AccessToken
	t.refreshToken = auth.RefreshToken

	user, err := t.userRepo.FindByEmail(context.Background(), email)
	if err != nil {
		return fmt.Errorf("failed to resolve logged in user: %w", err)
	}
	t.userID = user.ID

	return nil
}

func (t *testContext) theMonthHasExpenses(monthKey string, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("expense table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	expenses := make([]*entity.Expense, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		record := &entity.Expense{InstallmentsTotal: 1, InstallmentCurrent: 1}
		for i, cell := range row.Cells {
			if i >= len(header) {
				break
			}
			value := cell.Value
			switch header[i] {
			case "date":
				record.Date = value
			case "description":
				record.Description = value
			case "payment_method":
				record.PaymentMethod = entity.PaymentMethod(value)
			case "institution":
				record.Institution = entity.Institution(value)
			case "installments_total":
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid installments_total %q: %w", value, err)
				}
				record.InstallmentsTotal = n
			case "installment_current":
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid installment_current %q: %w", value, err)
				}
				record.InstallmentCurrent = n
			case "amount_ars":
				amount, err := decimal.NewFromString(value)
				if err != nil {
					return fmt.Errorf("invalid amount_ars %q: %w", value, err)
				}
				record.AmountARS = amount
			case "amount_usd":
				if value == "" {
					continue
				}
				amount, err := decimal.NewFromString(value)
				if err != nil {
					return fmt.Errorf("invalid amount_usd %q: %w", value, err)
				}
				record.AmountUSD = &amount
			case "responsible":
				record.Responsible = entity.Responsible(value)
			case "category":
				record.Category = value
			case "paid":
				record.Paid = value == "true"
			default:
				return fmt.Errorf("unknown expense column %q", header[i])
			}
		}
		expenses = append(expenses, record)
	}

	return t.expenseRepo.AddToMonth(context.Background(), t.userID, valueobject.MonthKey(monthKey), expenses)
}

func (t *testContext) myExchangeRateIs(rate string) error {
	value, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("invalid exchange rate %q: %w", rate, err)
	}
	return t.settingsRepo.SetExchangeRate(context.Background(), t.userID, value)
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.executeRequest(method, endpoint, nil, "application/json")
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	content := t.replaceTokenPlaceholders(body.Content)
	return t.executeRequest(method, endpoint, strings.NewReader(content), "application/json")
}

// iUploadASpreadsheet builds an xlsx workbook from the table rows and posts
// it as a multipart upload. The first table row is the sheet's header row.
func (t *testContext) iUploadASpreadsheet(monthKey, endpoint string, table *godog.Table) error {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)

	for rowIdx, row := range table.Rows {
		for colIdx, cell := range row.Cells {
			name, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := workbook.SetCellValue(sheet, name, cell.Value); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	var file bytes.Buffer
	if err := workbook.Write(&file); err != nil {
		return fmt.Errorf("failed to serialize workbook: %w", err)
	}

	var payload bytes.Buffer
	writer := multipart.NewWriter(&payload)
	part, err := writer.CreateFormFile("file", "ledger.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(file.Bytes()); err != nil {
		return fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.WriteField("month_key", monthKey); err != nil {
		return fmt.Errorf("failed to write month_key field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart payload: %w", err)
	}

	return t.executeRequest(http.MethodPost, endpoint, &payload, writer.FormDataContentType())
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{access_token}", t.accessToken)
	content = strings.ReplaceAll(content, "{refresh_token}", t.refreshToken)
	return content
}

func (t *testContext) executeRequest(method, endpoint string, body io.Reader, contentType string) error {
	req, err := http.NewRequest(method, t.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range t.requestHeaders {
		req.Header.Set(key, value)
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.StatusCode, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

// lookupField resolves a dot-separated path in the response JSON. Numeric
// segments index into arrays.
func (t *testContext) lookupField(path string) (any, error) {
	var document any
	if err := json.Unmarshal(t.responseBody, &document); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := document
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(t.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("field %q addresses an array with non-numeric segment %q", path, segment)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q index %d out of range (%d elements)", path, index, len(node))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q cannot descend into %T", path, current)
		}
	}

	return current, nil
}

func (t *testContext) theDbShouldContainRows(quantity int, table string) error {
	count, err := t.db.CountRows(table)
	if err != nil {
		return fmt.Errorf("failed to count rows in %q: %w", table, err)
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d rows in %q, found %d", quantity, table, count)
	}
	return nil
}
