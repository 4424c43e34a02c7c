// Package trackerclient is the typed HTTP client for the tracker REST API.
// The web UI talks to the backend only through it.
package trackerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/vasuli-app/vasuli/internal/entity"
	"github.com/vasuli-app/vasuli/pkg/transport"
)

const dateLayout = "2006-01-02"

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	const timeout = 5 * time.Second

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLogRoundTripper(http.DefaultTransport),
		},
	}
}

// Error is a non-2xx reply. Message carries the server's error field when
// the body had one, otherwise it is empty and callers fall back to their
// own wording.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api responded %d", e.StatusCode)
	}

	return fmt.Sprintf("api responded %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Message extracts the server's error text from err, or returns fallback.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}

type clientEntity struct {
	ID            uuid.UUID `json:"id"`
	ClientName    string    `json:"client_name"`
	CompanyName   string    `json:"company_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	City          string    `json:"city"`
	ContactPerson string    `json:"contact_person"`
	CreatedAt     time.Time `json:"created_at"`
}

type clientsResponse struct {
	Clients []clientEntity `json:"clients"`
	Count   int            `json:"count"`
}

func (c *Client) Clients(ctx context.Context) ([]entity.Client, error) {
	var resp clientsResponse

	err := c.do(ctx, http.MethodGet, "/clients", nil, &resp)
	if err != nil {
		return nil, err
	}

	clients := make([]entity.Client, 0, len(resp.Clients))
	for _, e := range resp.Clients {
		clients = append(clients, clientFromAPI(e))
	}

	return clients, nil
}

type createClientRequest struct {
	ClientName    string `json:"client_name"`
	CompanyName   string `json:"company_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	ContactPerson string `json:"contact_person"`
}

type createClientResponse struct {
	Client clientEntity `json:"client"`
}

func (c *Client) CreateClient(ctx context.Context, client entity.Client) (entity.Client, error) {
	req := createClientRequest{
		ClientName:    client.ClientName,
		CompanyName:   client.CompanyName,
		Email:         client.Email,
		Phone:         client.Phone,
		City:          client.City,
		ContactPerson: client.ContactPerson,
	}

	var resp createClientResponse

	err := c.do(ctx, http.MethodPost, "/clients", req, &resp)
	if err != nil {
		return entity.Client{}, err
	}

	return clientFromAPI(resp.Client), nil
}

type caseEntity struct {
	ID                uuid.UUID       `json:"id"`
	ClientID          uuid.UUID       `json:"client_id"`
	ClientName        string          `json:"client_name"`
	CompanyName       string          `json:"company_name"`
	InvoiceNumber     string          `json:"invoice_number"`
	InvoiceAmount     decimal.Decimal `json:"invoice_amount"`
	InvoiceDate       string          `json:"invoice_date"`
	DueDate           string          `json:"due_date"`
	Status            string          `json:"status"`
	LastFollowUpNotes string          `json:"last_follow_up_notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type casesResponse struct {
	Cases []caseEntity `json:"cases"`
	Count int          `json:"count"`
}

func (c *Client) Cases(ctx context.Context, f entity.CaseFilter) ([]entity.Case, error) {
	q := url.Values{}
	q.Set("sort", f.Sort.String())

	if f.Status != nil {
		q.Set("status", f.Status.String())
	}

	var resp casesResponse

	err := c.do(ctx, http.MethodGet, "/cases?"+q.Encode(), nil, &resp)
	if err != nil {
		return nil, err
	}

	cases := make([]entity.Case, 0, len(resp.Cases))

	for _, e := range resp.Cases {
		cs, err := caseFromAPI(e)
		if err != nil {
			return nil, err
		}

		cases = append(cases, cs)
	}

	return cases, nil
}

type caseResponse struct {
	Case caseEntity `json:"case"`
}

func (c *Client) Case(ctx context.Context, id uuid.UUID) (entity.Case, error) {
	var resp caseResponse

	err := c.do(ctx, http.MethodGet, "/cases/"+id.String(), nil, &resp)
	if err != nil {
		return entity.Case{}, err
	}

	return caseFromAPI(resp.Case)
}

type createCaseRequest struct {
	ClientID          string          `json:"client_id"`
	InvoiceNumber     string          `json:"invoice_number"`
	InvoiceAmount     decimal.Decimal `json:"invoice_amount"`
	InvoiceDate       string          `json:"invoice_date"`
	DueDate           string          `json:"due_date"`
	Status            string          `json:"status"`
	LastFollowUpNotes string          `json:"last_follow_up_notes"`
}

func (c *Client) CreateCase(ctx context.Context, cs entity.Case) (entity.Case, error) {
	req := createCaseRequest{
		ClientID:          cs.ClientID.String(),
		InvoiceNumber:     cs.InvoiceNumber,
		InvoiceAmount:     cs.InvoiceAmount,
		InvoiceDate:       cs.InvoiceDate.Format(dateLayout),
		DueDate:           cs.DueDate.Format(dateLayout),
		Status:            cs.Status.String(),
		LastFollowUpNotes: cs.LastFollowUpNotes,
	}

	var resp caseResponse

	err := c.do(ctx, http.MethodPost, "/cases", req, &resp)
	if err != nil {
		return entity.Case{}, err
	}

	return caseFromAPI(resp.Case)
}

type updateCaseRequest struct {
	Status            *string `json:"status,omitempty"`
	LastFollowUpNotes *string `json:"last_follow_up_notes,omitempty"`
}

func (c *Client) UpdateCase(ctx context.Context, id uuid.UUID, upd entity.CaseUpdate) (entity.Case, error) {
	var req updateCaseRequest

	if upd.Status != nil {
		s := upd.Status.String()
		req.Status = &s
	}

	req.LastFollowUpNotes = upd.LastFollowUpNotes

	var resp caseResponse

	err := c.do(ctx, http.MethodPatch, "/cases/"+id.String(), req, &resp)
	if err != nil {
		return entity.Case{}, err
	}

	return caseFromAPI(resp.Case)
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var body io.Reader

	if reqBody != nil {
		j, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		body = bytes.NewReader(j)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errBody struct {
			Error string `json:"error"`
		}

		b, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(b, &errBody)

		return &Error{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	err = json.NewDecoder(resp.Body).Decode(respBody)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func clientFromAPI(e clientEntity) entity.Client {
	return entity.Client{
		ID:            e.ID,
		ClientName:    e.ClientName,
		CompanyName:   e.CompanyName,
		Email:         e.Email,
		Phone:         e.Phone,
		City:          e.City,
		ContactPerson: e.ContactPerson,
		CreatedAt:     e.CreatedAt,
	}
}

func caseFromAPI(e caseEntity) (entity.Case, error) {
	status := entity.CaseStatus(e.Status)

	// A status outside the enum is a contract violation, not something to
	// style around.
	err := status.Validate()
	if err != nil {
		return entity.Case{}, err
	}

	invoiceDate, err := time.Parse(dateLayout, e.InvoiceDate)
	if err != nil {
		return entity.Case{}, fmt.Errorf("parse invoice_date: %w", err)
	}

	dueDate, err := time.Parse(dateLayout, e.DueDate)
	if err != nil {
		return entity.Case{}, fmt.Errorf("parse due_date: %w", err)
	}

	return entity.Case{
		ID:                e.ID,
		ClientID:          e.ClientID,
		ClientName:        e.ClientName,
		CompanyName:       e.CompanyName,
		InvoiceNumber:     e.InvoiceNumber,
		InvoiceAmount:     e.InvoiceAmount,
		InvoiceDate:       invoiceDate,
		DueDate:           dueDate,
		Status:            status,
		LastFollowUpNotes: e.LastFollowUpNotes,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}, nil
}
