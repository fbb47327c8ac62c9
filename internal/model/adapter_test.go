package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContractFromRecordSpellingVariants(t *testing.T) {
	variants := []map[string]any{
		{"Contract_Number": "C-100", "Customer_Name": "أحمد", "Total_Rent": 12000.0},
		{"contractNumber": "C-100", "customerName": "أحمد", "totalRent": "12000"},
		{"contract_number": "C-100", "client_name": "أحمد", "total_rent": 12000},
	}
	for i, rec := range variants {
		c := ContractFromRecord(rec)
		assert.Equal(t, "C-100", c.Number, "variant %d", i)
		assert.Equal(t, "أحمد", c.CustomerName, "variant %d", i)
		assert.Equal(t, 12000.0, c.BaseTotal, "variant %d", i)
	}
}

func TestContractFromRecordDates(t *testing.T) {
	c := ContractFromRecord(map[string]any{
		"start_date": "2025-03-01",
		"End_Date":   "01/09/2025",
	})
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), c.StartAt)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), c.EndAt)
}

func TestContractFromRecordMissingFields(t *testing.T) {
	c := ContractFromRecord(map[string]any{"unrelated": "x"})
	assert.Empty(t, c.Number)
	assert.Zero(t, c.BaseTotal)
	assert.True(t, c.StartAt.IsZero())
}

func TestBillboardFromRecord(t *testing.T) {
	b := BillboardFromRecord(map[string]any{
		"Billboard_Name":  "طرابلس ١",
		"Size":            "12x4",
		"Number_of_Faces": 2,
		"Municipality":    "طرابلس",
	})
	assert.Equal(t, "طرابلس ١", b.Name)
	assert.Equal(t, "12x4", b.Size)
	assert.Equal(t, 2, b.Faces)
	assert.Equal(t, "طرابلس", b.Municipality)
}
