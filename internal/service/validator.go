package service

import (
	"fmt"
	"strings"

	"github.com/vasuli-app/vasuli/internal/entity"
)

// ValidateClient guards the client invariants. The API layer produces the
// user-facing messages; this keeps the invariants enforced for every caller.
func ValidateClient(c entity.Client) error {
	fields := []struct {
		name  string
		value string
	}{
		{"client_name", c.ClientName},
		{"company_name", c.CompanyName},
		{"city", c.City},
		{"contact_person", c.ContactPerson},
		{"phone", c.Phone},
		{"email", c.Email},
	}

	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", entity.ErrInvalidArgument, f.name)
		}
	}

	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: invalid email format", entity.ErrInvalidArgument)
	}

	return nil
}

func ValidateNewCase(c entity.Case) error {
	if c.ClientID.IsNil() {
		return fmt.Errorf("%w: client_id is required", entity.ErrInvalidArgument)
	}

	if c.InvoiceNumber == "" {
		return fmt.Errorf("%w: invoice_number is required", entity.ErrInvalidArgument)
	}

	if c.InvoiceAmount.IsNegative() {
		return fmt.Errorf("%w: invoice_amount must be non-negative", entity.ErrInvalidArgument)
	}

	if c.InvoiceDate.IsZero() {
		return fmt.Errorf("%w: invoice_date is required", entity.ErrInvalidArgument)
	}

	if c.DueDate.IsZero() {
		return fmt.Errorf("%w: due_date is required", entity.ErrInvalidArgument)
	}

	return c.Status.Validate()
}
