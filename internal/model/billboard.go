package model

import (
	"time"

	"github.com/google/uuid"
)

type BillboardStatus string

const (
	BillboardStatusAvailable   BillboardStatus = "AVAILABLE"
	BillboardStatusRented      BillboardStatus = "RENTED"
	BillboardStatusMaintenance BillboardStatus = "MAINTENANCE"
)

type Billboard struct {
	ID               uuid.UUID
	Name             string
	Location         string
	Municipality     string
	Size             string // canonical size tag
	Level            string // canonical level tag
	Faces            int
	Status           BillboardStatus
	ImageURL         *string
	IsPartnership    bool
	Capital          float64
	CapitalRemaining float64
	PartnerCompanies []string `gorm:"-"`
	CreatedAt        time.Time
}
