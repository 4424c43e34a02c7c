package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type CaseStatus string

const (
	CaseStatusNew           CaseStatus = "New"
	CaseStatusInFollowUp    CaseStatus = "In Follow-up"
	CaseStatusPartiallyPaid CaseStatus = "Partially Paid"
	CaseStatusClosed        CaseStatus = "Closed"
)

// CaseStatuses lists every valid status in workflow order.
var CaseStatuses = []CaseStatus{
	CaseStatusNew,
	CaseStatusInFollowUp,
	CaseStatusPartiallyPaid,
	CaseStatusClosed,
}

func (s CaseStatus) Validate() error {
	switch s {
	case CaseStatusNew, CaseStatusInFollowUp, CaseStatusPartiallyPaid, CaseStatusClosed:
		return nil
	default:
		return fmt.Errorf("%w: unknown case status %q", ErrInvalidArgument, string(s))
	}
}

func (s CaseStatus) String() string {
	return string(s)
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	switch o {
	case SortAsc, SortDesc:
		return true
	}

	return false
}

func (o SortOrder) String() string {
	return string(o)
}

// CaseFilter narrows and orders a case listing. A nil Status means all
// statuses; Sort orders by due date.
type CaseFilter struct {
	Status *CaseStatus
	Sort   SortOrder
}

type Case struct {
	ID       uuid.UUID
	ClientID uuid.UUID

	// Joined from the clients table on every read.
	ClientName  string
	CompanyName string

	InvoiceNumber     string
	InvoiceAmount     decimal.Decimal
	InvoiceDate       time.Time
	DueDate           time.Time
	Status            CaseStatus
	LastFollowUpNotes string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CaseUpdate is a partial update. Only status and follow-up notes are
// mutable after creation; a nil field is left untouched.
type CaseUpdate struct {
	Status            *CaseStatus
	LastFollowUpNotes *string
}

func (u CaseUpdate) Empty() bool {
	return u.Status == nil && u.LastFollowUpNotes == nil
}
