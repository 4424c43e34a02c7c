package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Client struct {
	ID            uuid.UUID
	ClientName    string
	CompanyName   string
	Email         string
	Phone         string
	City          string
	ContactPerson string
	CreatedAt     time.Time
}
