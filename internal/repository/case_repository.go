package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/vasuli-app/vasuli/internal/entity"
)

func (r *Repository) CreateCase(ctx context.Context, c entity.Case) (entity.Case, error) {
	const q = `
	INSERT INTO cases (
		id,
		client_id,
		invoice_number,
		invoice_amount,
		invoice_date,
		due_date,
		status,
		last_follow_up_notes,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.ClientID,
		c.InvoiceNumber,
		c.InvoiceAmount,
		c.InvoiceDate,
		c.DueDate,
		c.Status,
		zeronull.Text(c.LastFollowUpNotes),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return entity.Case{}, err
	}

	return c, nil
}

func (r *Repository) Case(ctx context.Context, id uuid.UUID) (entity.Case, error) {
	q := selectCase + " WHERE c.id = $1"
	return scanCase(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) CaseByInvoiceNumber(ctx context.Context, invoiceNumber string) (entity.Case, error) {
	q := selectCase + " WHERE c.invoice_number = $1"
	return scanCase(r.db.QueryRow(ctx, q, invoiceNumber))
}

// Cases returns cases joined with their client, optionally narrowed to one
// status and ordered by due date. The DB is the sole authority for filtering
// and ordering; callers never re-sort.
func (r *Repository) Cases(ctx context.Context, f entity.CaseFilter) ([]entity.Case, error) {
	stmt := sq.Select(
		"c.id",
		"c.client_id",
		"cl.client_name",
		"cl.company_name",
		"c.invoice_number",
		"c.invoice_amount",
		"c.invoice_date",
		"c.due_date",
		"c.status",
		"c.last_follow_up_notes",
		"c.created_at",
		"c.updated_at",
	).
		From("cases c").
		Join("clients cl ON cl.id = c.client_id").
		PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"c.status": *f.Status})
	}

	order := "ASC"
	if f.Sort == entity.SortDesc {
		order = "DESC"
	}

	stmt = stmt.OrderBy("c.due_date " + order)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := make([]entity.Case, 0)

	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}

		cases = append(cases, c)
	}

	return cases, nil
}

func (r *Repository) UpdateCase(ctx context.Context, id uuid.UUID, upd entity.CaseUpdate, updatedAt time.Time) error {
	stmt := sq.Update("cases").
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	if upd.Status != nil {
		stmt = stmt.Set("status", *upd.Status)
	}

	if upd.LastFollowUpNotes != nil {
		stmt = stmt.Set("last_follow_up_notes", zeronull.Text(*upd.LastFollowUpNotes))
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanCase(row pgx.Row) (c entity.Case, err error) {
	err = row.Scan(
		&c.ID,
		&c.ClientID,
		&c.ClientName,
		&c.CompanyName,
		&c.InvoiceNumber,
		&c.InvoiceAmount,
		&c.InvoiceDate,
		&c.DueDate,
		&c.Status,
		(*zeronull.Text)(&c.LastFollowUpNotes),
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Case{}, entity.ErrNotFound
		}

		return entity.Case{}, err
	}

	return c, nil
}
