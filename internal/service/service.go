package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/vasuli-app/vasuli/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateClient(ctx context.Context, c entity.Client) (entity.Client, error)
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	ClientByEmail(ctx context.Context, email string) (entity.Client, error)
	Clients(ctx context.Context) ([]entity.Client, error)
	CreateCase(ctx context.Context, c entity.Case) (entity.Case, error)
	Case(ctx context.Context, id uuid.UUID) (entity.Case, error)
	CaseByInvoiceNumber(ctx context.Context, invoiceNumber string) (entity.Case, error)
	Cases(ctx context.Context, f entity.CaseFilter) ([]entity.Case, error)
	UpdateCase(ctx context.Context, id uuid.UUID, upd entity.CaseUpdate, updatedAt time.Time) error
}

type Producer interface {
	SendCaseCreated(ctx context.Context, caseID, clientID uuid.UUID, invoiceNumber string, amount decimal.Decimal, status string)
	SendCaseStatusChanged(ctx context.Context, caseID uuid.UUID, prevStatus, status string)
}

type Service struct {
	repo     Repository
	producer Producer
}

func New(repo Repository, producer Producer) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
	}
}

func (s *Service) Clients(ctx context.Context) ([]entity.Client, error) {
	return s.repo.Clients(ctx)
}

func (s *Service) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	return s.repo.Client(ctx, id)
}

func (s *Service) CreateClient(ctx context.Context, c entity.Client) (entity.Client, error) {
	err := ValidateClient(c)
	if err != nil {
		return entity.Client{}, err
	}

	_, err = s.repo.ClientByEmail(ctx, c.Email)
	if err == nil {
		return entity.Client{}, entity.ErrEmailExists
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Client{}, fmt.Errorf("check email: %w", err)
	}

	c.ID = uuid.Must(uuid.NewV4())
	c.CreatedAt = time.Now()

	c, err = s.repo.CreateClient(ctx, c)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	slog.InfoContext(ctx, "client created", "client_id", c.ID, "company", c.CompanyName)

	return c, nil
}

func (s *Service) Cases(ctx context.Context, f entity.CaseFilter) ([]entity.Case, error) {
	return s.repo.Cases(ctx, f)
}

func (s *Service) Case(ctx context.Context, id uuid.UUID) (entity.Case, error) {
	return s.repo.Case(ctx, id)
}

func (s *Service) CreateCase(ctx context.Context, c entity.Case) (entity.Case, error) {
	err := ValidateNewCase(c)
	if err != nil {
		return entity.Case{}, err
	}

	_, err = s.repo.Client(ctx, c.ClientID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Case{}, entity.ErrClientNotFound
		}

		return entity.Case{}, fmt.Errorf("check client: %w", err)
	}

	_, err = s.repo.CaseByInvoiceNumber(ctx, c.InvoiceNumber)
	if err == nil {
		return entity.Case{}, entity.ErrInvoiceNumberExists
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Case{}, fmt.Errorf("check invoice number: %w", err)
	}

	now := time.Now()

	c.ID = uuid.Must(uuid.NewV4())
	c.CreatedAt = now
	c.UpdatedAt = now

	c, err = s.repo.CreateCase(ctx, c)
	if err != nil {
		return entity.Case{}, fmt.Errorf("create case: %w", err)
	}

	// Re-read to pick up the joined client name and company.
	c, err = s.repo.Case(ctx, c.ID)
	if err != nil {
		return entity.Case{}, fmt.Errorf("read created case: %w", err)
	}

	s.producer.SendCaseCreated(ctx, c.ID, c.ClientID, c.InvoiceNumber, c.InvoiceAmount, c.Status.String())

	slog.InfoContext(ctx, "case created",
		"case_id", c.ID, "invoice_number", c.InvoiceNumber, "amount", c.InvoiceAmount)

	return c, nil
}

// UpdateCase applies a partial update and returns the record as stored,
// including the server-computed updated_at. An empty update is a no-op read.
func (s *Service) UpdateCase(ctx context.Context, id uuid.UUID, upd entity.CaseUpdate) (entity.Case, error) {
	if upd.Status != nil {
		err := upd.Status.Validate()
		if err != nil {
			return entity.Case{}, err
		}
	}

	prev, err := s.repo.Case(ctx, id)
	if err != nil {
		return entity.Case{}, err
	}

	if upd.Empty() {
		return prev, nil
	}

	err = s.repo.UpdateCase(ctx, id, upd, time.Now())
	if err != nil {
		return entity.Case{}, fmt.Errorf("update case: %w", err)
	}

	c, err := s.repo.Case(ctx, id)
	if err != nil {
		return entity.Case{}, fmt.Errorf("read updated case: %w", err)
	}

	if c.Status != prev.Status {
		s.producer.SendCaseStatusChanged(ctx, c.ID, prev.Status.String(), c.Status.String())
	}

	slog.InfoContext(ctx, "case updated", "case_id", c.ID, "status", c.Status)

	return c, nil
}
