package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID
	Name      string
	Company   string
	Category  string
	Phone     string
	CreatedAt time.Time
}
