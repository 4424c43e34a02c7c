package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vasuli-app/vasuli/internal/api"
	"github.com/vasuli-app/vasuli/internal/entity"
	"github.com/vasuli-app/vasuli/internal/mocks"
)

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	var resp api.HealthResponse

	code := tr.doJSON(t, http.MethodGet, "/api/health", nil, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "healthy", resp.Status)
	require.Equal(t, "API is running", resp.Message)
}

func TestHandler_Clients(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	clients := []entity.Client{testClient(), testClient()}

	tr.service.EXPECT().Clients(gomock.Any()).Return(clients, nil)

	var resp api.ClientsResponse

	code := tr.doJSON(t, http.MethodGet, "/api/clients", nil, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 2, resp.Count)
	require.Len(t, resp.Clients, 2)
	require.Equal(t, clients[0].ID.String(), resp.Clients[0].ID)
	require.Equal(t, clients[0].Email, resp.Clients[0].Email)
}

func TestHandler_Client_NotFound(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	id := uuid.Must(uuid.NewV4())

	tr.service.EXPECT().Client(gomock.Any(), id).Return(entity.Client{}, entity.ErrNotFound)

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodGet, "/api/clients/"+id.String(), nil, &resp)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Client not found", resp.Error)
}

func TestHandler_CreateClient(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	created := testClient()

	tr.service.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c entity.Client) (entity.Client, error) {
			require.Equal(t, "Asha Rao", c.ClientName)
			require.Equal(t, "asha@rao.com", c.Email)
			return created, nil
		})

	body := map[string]string{
		"client_name":    "Asha Rao",
		"company_name":   "Rao Textiles",
		"email":          "asha@rao.com",
		"phone":          "+91 98200 12345",
		"city":           "Pune",
		"contact_person": "Vivek",
	}

	var resp api.CreateClientResponse

	code := tr.doJSON(t, http.MethodPost, "/api/clients", body, &resp)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "Client created successfully", resp.Message)
	require.Equal(t, created.ID.String(), resp.Client.ID)
}

func TestHandler_CreateClient_MissingField(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	body := map[string]string{
		"client_name":    "Asha Rao",
		"company_name":   "Rao Textiles",
		"email":          "asha@rao.com",
		"phone":          "+91 98200 12345",
		"contact_person": "Vivek",
	}

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodPost, "/api/clients", body, &resp)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "city is required", resp.Error)
}

func TestHandler_CreateClient_DuplicateEmail(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	tr.service.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(entity.Client{}, entity.ErrEmailExists)

	body := map[string]string{
		"client_name":    "Asha Rao",
		"company_name":   "Rao Textiles",
		"email":          "asha@rao.com",
		"phone":          "+91 98200 12345",
		"city":           "Pune",
		"contact_person": "Vivek",
	}

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodPost, "/api/clients", body, &resp)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "Email already exists", resp.Error)
}

func TestHandler_Cases_FilterAndSort(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	status := entity.CaseStatusInFollowUp

	tr.service.EXPECT().Cases(gomock.Any(), entity.CaseFilter{Status: &status, Sort: entity.SortDesc}).
		Return([]entity.Case{testCase()}, nil)

	var resp api.CasesResponse

	code := tr.doJSON(t, http.MethodGet, "/api/cases?status=In+Follow-up&sort=desc", nil, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 1, resp.Count)
	require.Equal(t, "In Follow-up", resp.Cases[0].Status)
}

func TestHandler_Cases_DefaultSort(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	tr.service.EXPECT().Cases(gomock.Any(), entity.CaseFilter{Sort: entity.SortAsc}).
		Return([]entity.Case{}, nil)

	var resp api.CasesResponse

	code := tr.doJSON(t, http.MethodGet, "/api/cases", nil, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 0, resp.Count)
	require.NotNil(t, resp.Cases)
}

func TestHandler_Cases_UnknownStatus(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodGet, "/api/cases?status=Escalated", nil, &resp)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, fmt.Sprintf("Status must be one of: %v", entity.CaseStatuses), resp.Error)
}

func TestHandler_Case(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	c := testCase()

	tr.service.EXPECT().Case(gomock.Any(), c.ID).Return(c, nil)

	var resp api.CaseResponse

	code := tr.doJSON(t, http.MethodGet, "/api/cases/"+c.ID.String(), nil, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, c.ID.String(), resp.Case.ID)
	require.Equal(t, c.InvoiceAmount.String(), resp.Case.InvoiceAmount)
	require.Equal(t, "2024-02-15", resp.Case.DueDate)
	require.Equal(t, c.ClientName, resp.Case.ClientName)
}

func TestHandler_Case_NotFound(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	id := uuid.Must(uuid.NewV4())

	tr.service.EXPECT().Case(gomock.Any(), id).Return(entity.Case{}, entity.ErrNotFound)

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodGet, "/api/cases/"+id.String(), nil, &resp)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Case not found", resp.Error)
}

func TestHandler_Case_InvalidID(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodGet, "/api/cases/not-a-uuid", nil, &resp)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Invalid case id", resp.Error)
}

func TestHandler_CreateCase(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	created := testCase()

	tr.service.EXPECT().CreateCase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c entity.Case) (entity.Case, error) {
			// Status defaults to New when the request omits it.
			require.Equal(t, entity.CaseStatusNew, c.Status)
			require.Equal(t, "INV-2024-001", c.InvoiceNumber)
			return created, nil
		})

	body := map[string]any{
		"client_id":      created.ClientID.String(),
		"invoice_number": "INV-2024-001",
		"invoice_amount": 250000,
		"invoice_date":   "2024-01-15",
		"due_date":       "2024-02-15",
	}

	var resp api.CreateCaseResponse

	code := tr.doJSON(t, http.MethodPost, "/api/cases", body, &resp)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "Case created successfully", resp.Message)
	require.Equal(t, created.ID.String(), resp.Case.ID)
}

func TestHandler_CreateCase_InvalidDate(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	body := map[string]any{
		"client_id":      uuid.Must(uuid.NewV4()).String(),
		"invoice_number": "INV-2024-001",
		"invoice_amount": 250000,
		"invoice_date":   "15-01-2024",
		"due_date":       "2024-02-15",
	}

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodPost, "/api/cases", body, &resp)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Invalid invoice_date, expected YYYY-MM-DD", resp.Error)
}

func TestHandler_CreateCase_ClientNotFound(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	tr.service.EXPECT().CreateCase(gomock.Any(), gomock.Any()).Return(entity.Case{}, entity.ErrClientNotFound)

	body := map[string]any{
		"client_id":      uuid.Must(uuid.NewV4()).String(),
		"invoice_number": "INV-2024-001",
		"invoice_amount": 250000,
		"invoice_date":   "2024-01-15",
		"due_date":       "2024-02-15",
	}

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodPost, "/api/cases", body, &resp)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Client not found", resp.Error)
}

func TestHandler_CreateCase_DuplicateInvoice(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	tr.service.EXPECT().CreateCase(gomock.Any(), gomock.Any()).Return(entity.Case{}, entity.ErrInvoiceNumberExists)

	body := map[string]any{
		"client_id":      uuid.Must(uuid.NewV4()).String(),
		"invoice_number": "INV-2024-001",
		"invoice_amount": 250000,
		"invoice_date":   "2024-01-15",
		"due_date":       "2024-02-15",
	}

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodPost, "/api/cases", body, &resp)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "Invoice number already exists", resp.Error)
}

func TestHandler_UpdateCase(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	updated := testCase()
	updated.Status = entity.CaseStatusPartiallyPaid
	updated.LastFollowUpNotes = "Received partial payment"

	tr.service.EXPECT().UpdateCase(gomock.Any(), updated.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upd entity.CaseUpdate) (entity.Case, error) {
			require.NotNil(t, upd.Status)
			require.Equal(t, entity.CaseStatusPartiallyPaid, *upd.Status)
			require.NotNil(t, upd.LastFollowUpNotes)
			require.Equal(t, "Received partial payment", *upd.LastFollowUpNotes)
			return updated, nil
		})

	body := map[string]string{
		"status":               "Partially Paid",
		"last_follow_up_notes": "Received partial payment",
	}

	var resp api.UpdateCaseResponse

	code := tr.doJSON(t, http.MethodPatch, "/api/cases/"+updated.ID.String(), body, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Case updated successfully", resp.Message)
	require.Equal(t, "Partially Paid", resp.Case.Status)
}

func TestHandler_UpdateCase_NotesOnly(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	updated := testCase()

	tr.service.EXPECT().UpdateCase(gomock.Any(), updated.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upd entity.CaseUpdate) (entity.Case, error) {
			// An omitted status must stay untouched.
			require.Nil(t, upd.Status)
			require.NotNil(t, upd.LastFollowUpNotes)
			return updated, nil
		})

	body := map[string]string{"last_follow_up_notes": "Called, no answer"}

	var resp api.UpdateCaseResponse

	code := tr.doJSON(t, http.MethodPatch, "/api/cases/"+updated.ID.String(), body, &resp)
	require.Equal(t, http.StatusOK, code)
}

func TestHandler_UpdateCase_UnknownStatus(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	body := map[string]string{"status": "Escalated"}

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodPatch, "/api/cases/"+uuid.Must(uuid.NewV4()).String(), body, &resp)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, fmt.Sprintf("Status must be one of: %v", entity.CaseStatuses), resp.Error)
}

func TestHandler_UpdateCase_NotFound(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	id := uuid.Must(uuid.NewV4())

	tr.service.EXPECT().UpdateCase(gomock.Any(), id, gomock.Any()).Return(entity.Case{}, entity.ErrNotFound)

	body := map[string]string{"status": "Closed"}

	var resp api.ErrorResponse

	code := tr.doJSON(t, http.MethodPatch, "/api/cases/"+id.String(), body, &resp)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Case not found", resp.Error)
}

type Tester struct {
	serverURL string
	service   *mocks.MockService
}

func newTester(t *testing.T) Tester {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockService(ctrl)

	handler := api.NewHandler(serviceMock)
	mw := api.NewMiddleware()

	router := api.NewRouter(handler, mw)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return Tester{
		serverURL: server.URL,
		service:   serviceMock,
	}
}

func (tr Tester) doJSON(t *testing.T, method, path string, reqBody, respBody any) int {
	t.Helper()

	var body io.Reader

	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		require.NoError(t, err)

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, tr.serverURL+path, body)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	err = json.NewDecoder(resp.Body).Decode(respBody)
	require.NoError(t, err)

	return resp.StatusCode
}

func testClient() entity.Client {
	return entity.Client{
		ID:            uuid.Must(uuid.NewV4()),
		ClientName:    "Asha Rao",
		CompanyName:   "Rao Textiles",
		Email:         uuid.Must(uuid.NewV4()).String() + "@example.com",
		Phone:         "+91 98200 12345",
		City:          "Pune",
		ContactPerson: "Vivek",
		CreatedAt:     time.Now(),
	}
}

func testCase() entity.Case {
	now := time.Now()

	return entity.Case{
		ID:                uuid.Must(uuid.NewV4()),
		ClientID:          uuid.Must(uuid.NewV4()),
		ClientName:        "Asha Rao",
		CompanyName:       "Rao Textiles",
		InvoiceNumber:     "INV-" + uuid.Must(uuid.NewV4()).String(),
		InvoiceAmount:     decimal.RequireFromString("250000"),
		InvoiceDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:           time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Status:            entity.CaseStatusInFollowUp,
		LastFollowUpNotes: "Invoice sent, awaiting acknowledgement",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
