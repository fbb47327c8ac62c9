package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/billboard-rentals/internal/model"
)

type fakeBillboardWriter struct {
	fakeBillboardStore
	created []model.Billboard
}

func (s *fakeBillboardWriter) Create(_ context.Context, b model.Billboard) (*model.Billboard, error) {
	s.created = append(s.created, b)
	return &b, nil
}

func (s *fakeBillboardWriter) List(_ context.Context, _ *model.BillboardStatus) ([]model.Billboard, error) {
	return s.created, nil
}

func TestBillboardCreateCanonicalizesAndDefaults(t *testing.T) {
	writer := &fakeBillboardWriter{}
	svc := NewBillboardService(writer)

	saved, err := svc.Create(context.Background(), model.Billboard{
		Name:    "لوحة الدخول",
		Size:    "12 * 4",
		Level:   "premium",
		Capital: 5000,
	})
	require.NoError(t, err)

	assert.Equal(t, "4x12", saved.Size)
	assert.Equal(t, "ممتاز", saved.Level)
	assert.Equal(t, 1, saved.Faces)
	assert.Equal(t, model.BillboardStatusAvailable, saved.Status)
	assert.Equal(t, 5000.0, saved.CapitalRemaining)
}

func TestBillboardImportResolvesFieldVariants(t *testing.T) {
	writer := &fakeBillboardWriter{}
	svc := NewBillboardService(writer)

	imported, err := svc.Import(context.Background(), []map[string]any{
		{
			"Billboard_Name":  "لوحة الطريق",
			"billboard_size":  "12×4",
			"Level":           "vip",
			"Municipality":    "البلدية الشرقية",
			"Number_of_Faces": 2,
		},
	})
	require.NoError(t, err)
	require.Len(t, imported, 1)

	saved := imported[0]
	assert.Equal(t, "لوحة الطريق", saved.Name)
	assert.Equal(t, "4x12", saved.Size)
	assert.Equal(t, "VIP", saved.Level)
	assert.Equal(t, 2, saved.Faces)
	assert.Equal(t, model.BillboardStatusAvailable, saved.Status)
}

func TestBillboardImportRejectsUnnamedRecord(t *testing.T) {
	svc := NewBillboardService(&fakeBillboardWriter{})

	_, err := svc.Import(context.Background(), []map[string]any{
		{"Size": "4x12"},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
