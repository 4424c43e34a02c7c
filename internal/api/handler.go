package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/vasuli-app/vasuli/internal/entity"
)

// @title Invoice Recovery Tracker API
// @version 1.0
// @description REST backend for tracking invoice recovery cases per client
// @BasePath /api

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

const dateLayout = "2006-01-02"

type Service interface {
	Clients(ctx context.Context) ([]entity.Client, error)
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	CreateClient(ctx context.Context, c entity.Client) (entity.Client, error)
	Cases(ctx context.Context, f entity.CaseFilter) ([]entity.Case, error)
	Case(ctx context.Context, id uuid.UUID) (entity.Case, error)
	CreateCase(ctx context.Context, c entity.Case) (entity.Case, error)
	UpdateCase(ctx context.Context, id uuid.UUID, upd entity.CaseUpdate) (entity.Case, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: "healthy", Message: "API is running"})
}

type ClientEntity struct {
	ID            string    `json:"id"`
	ClientName    string    `json:"client_name"`
	CompanyName   string    `json:"company_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	City          string    `json:"city"`
	ContactPerson string    `json:"contact_person"`
	CreatedAt     time.Time `json:"created_at"`
}

type ClientsResponse struct {
	Clients []ClientEntity `json:"clients"`
	Count   int            `json:"count"`
}

// Clients returns the full client collection
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {object} ClientsResponse
// @Failure 500 {object} ErrorResponse
// @Router /clients [get]
func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.Clients(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to fetch clients")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ClientsResponse{Clients: clientsToAPI(clients), Count: len(clients)})
}

type ClientResponse struct {
	Client ClientEntity `json:"client"`
}

// Client returns a single client by id
// @Summary Get client
// @Tags clients
// @Produce json
// @Param id path string true "Client id"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id} [get]
func (h *Handler) Client(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	client, err := h.s.Client(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Client not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to fetch client")

		return
	}

	SendJSON(ctx, w, http.StatusOK, ClientResponse{Client: clientToAPI(client)})
}

type CreateClientRequest struct {
	ClientName    string `json:"client_name"`
	CompanyName   string `json:"company_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	ContactPerson string `json:"contact_person"`
}

type CreateClientResponse struct {
	Message string       `json:"message"`
	Client  ClientEntity `json:"client"`
}

// CreateClient creates a new client
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Param CreateClientRequest body CreateClientRequest true "Client record"
// @Success 201 {object} CreateClientResponse
// @Failure 400 {object} ErrorResponse "Missing field or malformed email"
// @Failure 409 {object} ErrorResponse "Email already exists"
// @Failure 500 {object} ErrorResponse
// @Router /clients [post]
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	required := []struct {
		name  string
		value string
	}{
		{"client_name", req.ClientName},
		{"company_name", req.CompanyName},
		{"city", req.City},
		{"contact_person", req.ContactPerson},
		{"phone", req.Phone},
		{"email", req.Email},
	}

	for _, f := range required {
		if f.value == "" {
			SendJSONErr(ctx, w, http.StatusBadRequest, nil, f.name+" is required")
			return
		}
	}

	client, err := h.s.CreateClient(ctx, entity.Client{
		ClientName:    req.ClientName,
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		Phone:         req.Phone,
		City:          req.City,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmailExists):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Email already exists")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid email format")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create client")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateClientResponse{
		Message: "Client created successfully",
		Client:  clientToAPI(client),
	})
}

type CaseEntity struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"client_id"`
	ClientName        string    `json:"client_name"`
	CompanyName       string    `json:"company_name"`
	InvoiceNumber     string    `json:"invoice_number"`
	InvoiceAmount     string    `json:"invoice_amount"`
	InvoiceDate       string    `json:"invoice_date"`
	DueDate           string    `json:"due_date"`
	Status            string    `json:"status"`
	LastFollowUpNotes string    `json:"last_follow_up_notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CasesResponse struct {
	Cases []CaseEntity `json:"cases"`
	Count int          `json:"count"`
}

// Cases returns cases filtered by status and sorted by due date
// @Summary List cases
// @Tags cases
// @Produce json
// @Param status query string false "Filter by status; omitted means all"
// @Param sort query string false "Due date order: asc (default) or desc"
// @Success 200 {object} CasesResponse
// @Failure 400 {object} ErrorResponse "Unknown status value"
// @Failure 500 {object} ErrorResponse
// @Router /cases [get]
func (h *Handler) Cases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseCaseFilter(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, statusRequiredMsg())
		return
	}

	cases, err := h.s.Cases(ctx, filter)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to fetch cases")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CasesResponse{Cases: casesToAPI(cases), Count: len(cases)})
}

type CaseResponse struct {
	Case CaseEntity `json:"case"`
}

// Case returns a single case by id
// @Summary Get case
// @Tags cases
// @Produce json
// @Param id path string true "Case id"
// @Success 200 {object} CaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cases/{id} [get]
func (h *Handler) Case(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid case id")
		return
	}

	c, err := h.s.Case(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Case not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to fetch case")

		return
	}

	SendJSON(ctx, w, http.StatusOK, CaseResponse{Case: caseToAPI(c)})
}

type CreateCaseRequest struct {
	ClientID          string          `json:"client_id"`
	InvoiceNumber     string          `json:"invoice_number"`
	InvoiceAmount     decimal.Decimal `json:"invoice_amount"`
	InvoiceDate       string          `json:"invoice_date"`
	DueDate           string          `json:"due_date"`
	Status            string          `json:"status"`
	LastFollowUpNotes string          `json:"last_follow_up_notes"`
}

type CreateCaseResponse struct {
	Message string     `json:"message"`
	Case    CaseEntity `json:"case"`
}

// CreateCase creates a new recovery case for an existing client
// @Summary Create case
// @Tags cases
// @Accept json
// @Produce json
// @Param CreateCaseRequest body CreateCaseRequest true "Case record; status defaults to New"
// @Success 201 {object} CreateCaseResponse
// @Failure 400 {object} ErrorResponse "Missing field, bad date or unknown status"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 409 {object} ErrorResponse "Invoice number already exists"
// @Failure 500 {object} ErrorResponse
// @Router /cases [post]
func (h *Handler) CreateCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCaseRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if req.ClientID == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "client_id is required")
		return
	}

	clientID, err := uuid.FromString(req.ClientID)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client_id")
		return
	}

	if req.InvoiceNumber == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "invoice_number is required")
		return
	}

	if req.InvoiceAmount.IsNegative() {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "invoice_amount must be non-negative")
		return
	}

	if req.InvoiceDate == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "invoice_date is required")
		return
	}

	invoiceDate, err := time.Parse(dateLayout, req.InvoiceDate)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice_date, expected YYYY-MM-DD")
		return
	}

	if req.DueDate == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "due_date is required")
		return
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid due_date, expected YYYY-MM-DD")
		return
	}

	status := entity.CaseStatusNew
	if req.Status != "" {
		status = entity.CaseStatus(req.Status)

		err = status.Validate()
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, statusRequiredMsg())
			return
		}
	}

	c, err := h.s.CreateCase(ctx, entity.Case{
		ClientID:          clientID,
		InvoiceNumber:     req.InvoiceNumber,
		InvoiceAmount:     req.InvoiceAmount,
		InvoiceDate:       invoiceDate,
		DueDate:           dueDate,
		Status:            status,
		LastFollowUpNotes: req.LastFollowUpNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrClientNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Client not found")
		case errors.Is(err, entity.ErrInvoiceNumberExists):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Invoice number already exists")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid case data")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create case")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateCaseResponse{
		Message: "Case created successfully",
		Case:    caseToAPI(c),
	})
}

type UpdateCaseRequest struct {
	Status            *string `json:"status"`
	LastFollowUpNotes *string `json:"last_follow_up_notes"`
}

type UpdateCaseResponse struct {
	Message string     `json:"message"`
	Case    CaseEntity `json:"case"`
}

// UpdateCase applies a partial update to a case's status and follow-up notes
// @Summary Update case
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case id"
// @Param UpdateCaseRequest body UpdateCaseRequest true "Fields to change; omitted fields keep their value"
// @Success 200 {object} UpdateCaseResponse
// @Failure 400 {object} ErrorResponse "Unknown status value"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Failure 500 {object} ErrorResponse
// @Router /cases/{id} [patch]
func (h *Handler) UpdateCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid case id")
		return
	}

	var req UpdateCaseRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	var upd entity.CaseUpdate

	if req.Status != nil {
		status := entity.CaseStatus(*req.Status)

		err = status.Validate()
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, statusRequiredMsg())
			return
		}

		upd.Status = &status
	}

	upd.LastFollowUpNotes = req.LastFollowUpNotes

	c, err := h.s.UpdateCase(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Case not found")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, statusRequiredMsg())
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to update case")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, UpdateCaseResponse{
		Message: "Case updated successfully",
		Case:    caseToAPI(c),
	})
}

func parseCaseFilter(url url.Values) (entity.CaseFilter, error) {
	filter := entity.CaseFilter{
		Sort: entity.SortAsc,
	}

	if sort := entity.SortOrder(url.Get("sort")); sort.IsValid() {
		filter.Sort = sort
	}

	if s := url.Get("status"); s != "" {
		status := entity.CaseStatus(s)

		err := status.Validate()
		if err != nil {
			return entity.CaseFilter{}, err
		}

		filter.Status = &status
	}

	return filter, nil
}

func statusRequiredMsg() string {
	return fmt.Sprintf("Status must be one of: %v", entity.CaseStatuses)
}

func clientToAPI(c entity.Client) ClientEntity {
	return ClientEntity{
		ID:            c.ID.String(),
		ClientName:    c.ClientName,
		CompanyName:   c.CompanyName,
		Email:         c.Email,
		Phone:         c.Phone,
		City:          c.City,
		ContactPerson: c.ContactPerson,
		CreatedAt:     c.CreatedAt,
	}
}

func clientsToAPI(clients []entity.Client) []ClientEntity {
	res := make([]ClientEntity, 0, len(clients))
	for _, c := range clients {
		res = append(res, clientToAPI(c))
	}

	return res
}

func caseToAPI(c entity.Case) CaseEntity {
	return CaseEntity{
		ID:                c.ID.String(),
		ClientID:          c.ClientID.String(),
		ClientName:        c.ClientName,
		CompanyName:       c.CompanyName,
		InvoiceNumber:     c.InvoiceNumber,
		InvoiceAmount:     c.InvoiceAmount.String(),
		InvoiceDate:       c.InvoiceDate.Format(dateLayout),
		DueDate:           c.DueDate.Format(dateLayout),
		Status:            c.Status.String(),
		LastFollowUpNotes: c.LastFollowUpNotes,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func casesToAPI(cases []entity.Case) []CaseEntity {
	res := make([]CaseEntity, 0, len(cases))
	for _, c := range cases {
		res = append(res, caseToAPI(c))
	}

	return res
}
