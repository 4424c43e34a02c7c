package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vasuli-app/vasuli/internal/entity"
	"github.com/vasuli-app/vasuli/internal/mocks"
	"github.com/vasuli-app/vasuli/internal/service"
)

func TestService_CreateClient(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	c := entity.Client{
		ClientName:    "Asha Rao",
		CompanyName:   "Rao Textiles",
		Email:         "asha@rao.com",
		Phone:         "+91 98200 12345",
		City:          "Pune",
		ContactPerson: "Vivek",
	}

	repo.EXPECT().ClientByEmail(context.Background(), c.Email).Return(entity.Client{}, entity.ErrNotFound)
	repo.EXPECT().CreateClient(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got entity.Client) (entity.Client, error) {
			require.False(t, got.ID.IsNil())
			require.False(t, got.CreatedAt.IsZero())
			return got, nil
		})

	s := service.New(repo, producer)

	created, err := s.CreateClient(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, c.Email, created.Email)
	require.False(t, created.ID.IsNil())
}

func TestService_CreateClient_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	c := entity.Client{
		ClientName:    "Asha Rao",
		CompanyName:   "Rao Textiles",
		Email:         "asha@rao.com",
		Phone:         "+91 98200 12345",
		City:          "Pune",
		ContactPerson: "Vivek",
	}

	repo.EXPECT().ClientByEmail(context.Background(), c.Email).Return(entity.Client{ID: uuid.Must(uuid.NewV4())}, nil)

	s := service.New(repo, producer)

	_, err := s.CreateClient(context.Background(), c)
	require.ErrorIs(t, err, entity.ErrEmailExists)
}

func TestService_CreateClient_InvalidEmail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.New(repo, producer)

	_, err := s.CreateClient(context.Background(), entity.Client{
		ClientName:    "Asha Rao",
		CompanyName:   "Rao Textiles",
		Email:         "not-an-email",
		Phone:         "+91 98200 12345",
		City:          "Pune",
		ContactPerson: "Vivek",
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_CreateCase(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	clientID := uuid.Must(uuid.NewV4())

	c := entity.Case{
		ClientID:      clientID,
		InvoiceNumber: "INV-2024-001",
		InvoiceAmount: decimal.RequireFromString("250000"),
		InvoiceDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Status:        entity.CaseStatusNew,
	}

	repo.EXPECT().Client(context.Background(), clientID).Return(entity.Client{ID: clientID}, nil)
	repo.EXPECT().CaseByInvoiceNumber(context.Background(), c.InvoiceNumber).Return(entity.Case{}, entity.ErrNotFound)

	var createdID uuid.UUID

	repo.EXPECT().CreateCase(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got entity.Case) (entity.Case, error) {
			require.False(t, got.ID.IsNil())
			require.False(t, got.CreatedAt.IsZero())
			require.Equal(t, got.CreatedAt, got.UpdatedAt)
			createdID = got.ID
			return got, nil
		})
	repo.EXPECT().Case(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (entity.Case, error) {
			require.Equal(t, createdID, id)

			stored := c
			stored.ID = id
			stored.ClientName = "Asha Rao"
			stored.CompanyName = "Rao Textiles"
			return stored, nil
		})
	producer.EXPECT().SendCaseCreated(context.Background(), gomock.Any(), clientID, c.InvoiceNumber, c.InvoiceAmount, c.Status.String())

	s := service.New(repo, producer)

	created, err := s.CreateCase(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", created.ClientName)
	require.Equal(t, "Rao Textiles", created.CompanyName)
}

func TestService_CreateCase_ClientNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	clientID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Client(context.Background(), clientID).Return(entity.Client{}, entity.ErrNotFound)

	s := service.New(repo, producer)

	_, err := s.CreateCase(context.Background(), entity.Case{
		ClientID:      clientID,
		InvoiceNumber: "INV-2024-001",
		InvoiceAmount: decimal.RequireFromString("250000"),
		InvoiceDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Status:        entity.CaseStatusNew,
	})
	require.ErrorIs(t, err, entity.ErrClientNotFound)
}

func TestService_CreateCase_DuplicateInvoiceNumber(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	clientID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Client(context.Background(), clientID).Return(entity.Client{ID: clientID}, nil)
	repo.EXPECT().CaseByInvoiceNumber(context.Background(), "INV-2024-001").
		Return(entity.Case{ID: uuid.Must(uuid.NewV4())}, nil)

	s := service.New(repo, producer)

	_, err := s.CreateCase(context.Background(), entity.Case{
		ClientID:      clientID,
		InvoiceNumber: "INV-2024-001",
		InvoiceAmount: decimal.RequireFromString("250000"),
		InvoiceDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Status:        entity.CaseStatusNew,
	})
	require.ErrorIs(t, err, entity.ErrInvoiceNumberExists)
}

func TestService_UpdateCase_StatusChange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	id := uuid.Must(uuid.NewV4())
	status := entity.CaseStatusPartiallyPaid
	notes := "Client paid 1 lakh, promised the rest next month"

	prev := entity.Case{ID: id, Status: entity.CaseStatusInFollowUp}
	updated := entity.Case{ID: id, Status: status, LastFollowUpNotes: notes}

	gomock.InOrder(
		repo.EXPECT().Case(context.Background(), id).Return(prev, nil),
		repo.EXPECT().UpdateCase(context.Background(), id, gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Case(context.Background(), id).Return(updated, nil),
	)
	producer.EXPECT().SendCaseStatusChanged(context.Background(), id, prev.Status.String(), status.String())

	s := service.New(repo, producer)

	got, err := s.UpdateCase(context.Background(), id, entity.CaseUpdate{
		Status:            &status,
		LastFollowUpNotes: &notes,
	})
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestService_UpdateCase_SameStatusNoEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	id := uuid.Must(uuid.NewV4())
	notes := "Spoke with accounts, payment expected Friday"

	prev := entity.Case{ID: id, Status: entity.CaseStatusInFollowUp}
	updated := entity.Case{ID: id, Status: entity.CaseStatusInFollowUp, LastFollowUpNotes: notes}

	gomock.InOrder(
		repo.EXPECT().Case(context.Background(), id).Return(prev, nil),
		repo.EXPECT().UpdateCase(context.Background(), id, gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Case(context.Background(), id).Return(updated, nil),
	)

	s := service.New(repo, producer)

	got, err := s.UpdateCase(context.Background(), id, entity.CaseUpdate{LastFollowUpNotes: &notes})
	require.NoError(t, err)
	require.Equal(t, notes, got.LastFollowUpNotes)
}

func TestService_UpdateCase_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	id := uuid.Must(uuid.NewV4())
	prev := entity.Case{ID: id, Status: entity.CaseStatusNew}

	repo.EXPECT().Case(context.Background(), id).Return(prev, nil)

	s := service.New(repo, producer)

	got, err := s.UpdateCase(context.Background(), id, entity.CaseUpdate{})
	require.NoError(t, err)
	require.Equal(t, prev, got)
}

func TestService_UpdateCase_InvalidStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.New(repo, producer)

	status := entity.CaseStatus("Escalated")

	_, err := s.UpdateCase(context.Background(), uuid.Must(uuid.NewV4()), entity.CaseUpdate{Status: &status})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_UpdateCase_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	id := uuid.Must(uuid.NewV4())

	repo.EXPECT().Case(context.Background(), id).Return(entity.Case{}, entity.ErrNotFound)

	s := service.New(repo, producer)

	_, err := s.UpdateCase(context.Background(), id, entity.CaseUpdate{})
	require.ErrorIs(t, err, entity.ErrNotFound)
}
