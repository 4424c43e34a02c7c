package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/vasuli-app/vasuli/internal/entity"
)

func (r *Repository) CreateClient(ctx context.Context, c entity.Client) (entity.Client, error) {
	const q = `
	INSERT INTO clients (
		id,
		client_name,
		company_name,
		email,
		phone,
		city,
		contact_person,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.ClientName,
		c.CompanyName,
		c.Email,
		c.Phone,
		c.City,
		c.ContactPerson,
		c.CreatedAt,
	)
	if err != nil {
		return entity.Client{}, err
	}

	return c, nil
}

func (r *Repository) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	q := selectClient + " WHERE id = $1"
	return scanClient(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) ClientByEmail(ctx context.Context, email string) (entity.Client, error) {
	q := selectClient + " WHERE email = $1"
	return scanClient(r.db.QueryRow(ctx, q, email))
}

// Clients returns all clients, newest first.
func (r *Repository) Clients(ctx context.Context) (clients []entity.Client, err error) {
	q := selectClient + " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, nil
}

func scanClient(row pgx.Row) (c entity.Client, err error) {
	err = row.Scan(
		&c.ID,
		&c.ClientName,
		&c.CompanyName,
		&c.Email,
		&c.Phone,
		&c.City,
		&c.ContactPerson,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Client{}, entity.ErrNotFound
		}

		return entity.Client{}, err
	}

	return c, nil
}
