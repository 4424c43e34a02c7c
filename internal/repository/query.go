package repository

const (
	selectClient = `SELECT
		id,
		client_name,
		company_name,
		email,
		phone,
		city,
		contact_person,
		created_at
	FROM clients`

	selectCase = `SELECT
		c.id,
		c.client_id,
		cl.client_name,
		cl.company_name,
		c.invoice_number,
		c.invoice_amount,
		c.invoice_date,
		c.due_date,
		c.status,
		c.last_follow_up_notes,
		c.created_at,
		c.updated_at
	FROM cases c
	JOIN clients cl ON cl.id = c.client_id`
)
