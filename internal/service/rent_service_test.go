package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/billboard-rentals/internal/model"
	"github.com/nurpe/billboard-rentals/internal/partnership"
)

// fakeLedger holds the authoritative capital itself, like the real repository
// does under its row lock.
type fakeLedger struct {
	capital      float64
	billboardID  uuid.UUID
	newRemaining float64
	entries      []model.PartnerTransaction
}

func (l *fakeLedger) RecordRentSplit(_ context.Context, billboardID uuid.UUID, build func(float64) (float64, []model.PartnerTransaction)) error {
	l.billboardID = billboardID
	newRemaining, entries := build(l.capital)
	l.capital = newRemaining
	l.newRemaining = newRemaining
	l.entries = append(l.entries, entries...)
	return nil
}

func (l *fakeLedger) ListByBillboard(_ context.Context, _ uuid.UUID) ([]model.PartnerTransaction, error) {
	return l.entries, nil
}

func TestApplyRentRecoupmentPhase(t *testing.T) {
	id := uuid.New()
	boards := &fakeBillboardStore{boards: map[uuid.UUID]*model.Billboard{
		id: {
			ID:               id,
			Name:             "لوحة مشتركة",
			IsPartnership:    true,
			Capital:          20000,
			CapitalRemaining: 100,
			PartnerCompanies: []string{"شريك أ", "شريك ب"},
		},
	}}
	ledger := &fakeLedger{capital: 100}
	svc := NewRentService(boards, ledger, "الشركة", zerolog.Nop())

	result, err := svc.ApplyRent(context.Background(), ApplyRentInput{BillboardID: id, Amount: 1000})
	require.NoError(t, err)

	assert.Equal(t, 350.0, result.Split.Company)
	assert.Equal(t, 350.0, result.Split.Partner)
	assert.Equal(t, 300.0, result.Split.Deduct)
	assert.Equal(t, 0.0, result.Split.NewCapitalRemaining)

	require.Len(t, ledger.entries, 4)
	assert.Equal(t, 0.0, ledger.newRemaining)
	assert.Equal(t, "شريك أ", ledger.entries[1].Beneficiary)
	assert.Equal(t, 175.0, ledger.entries[1].Amount)
}

func TestApplyRentPostRecoupment(t *testing.T) {
	id := uuid.New()
	boards := &fakeBillboardStore{boards: map[uuid.UUID]*model.Billboard{
		id: {ID: id, IsPartnership: true, CapitalRemaining: 0},
	}}
	ledger := &fakeLedger{}
	svc := NewRentService(boards, ledger, "الشركة", zerolog.Nop())

	result, err := svc.ApplyRent(context.Background(), ApplyRentInput{BillboardID: id, Amount: 1000})
	require.NoError(t, err)
	assert.Equal(t, 500.0, result.Split.Company)
	assert.Equal(t, 500.0, result.Split.Partner)
	assert.Equal(t, 0.0, result.Split.Deduct)

	// No partners listed: partner share booked against the placeholder.
	require.Len(t, ledger.entries, 2)
	assert.Equal(t, partnership.PlaceholderPartner, ledger.entries[1].Beneficiary)
}

func TestApplyRentSplitsFromLedgerCapital(t *testing.T) {
	// The billboard record read before the write may be stale: a concurrent
	// rent event can have recouped the capital in between. The split must
	// come from the capital the ledger holds at write time.
	id := uuid.New()
	boards := &fakeBillboardStore{boards: map[uuid.UUID]*model.Billboard{
		id: {ID: id, IsPartnership: true, Capital: 20000, CapitalRemaining: 1000},
	}}
	ledger := &fakeLedger{capital: 0}
	svc := NewRentService(boards, ledger, "الشركة", zerolog.Nop())

	result, err := svc.ApplyRent(context.Background(), ApplyRentInput{BillboardID: id, Amount: 1000})
	require.NoError(t, err)

	assert.Equal(t, 500.0, result.Split.Company)
	assert.Equal(t, 500.0, result.Split.Partner)
	assert.Equal(t, 0.0, result.Split.Deduct)
	assert.Equal(t, 0.0, ledger.capital)
}

func TestApplyRentDecreasesCapitalAcrossEvents(t *testing.T) {
	id := uuid.New()
	boards := &fakeBillboardStore{boards: map[uuid.UUID]*model.Billboard{
		id: {ID: id, IsPartnership: true, Capital: 1000, CapitalRemaining: 1000},
	}}
	ledger := &fakeLedger{capital: 1000}
	svc := NewRentService(boards, ledger, "الشركة", zerolog.Nop())

	first, err := svc.ApplyRent(context.Background(), ApplyRentInput{BillboardID: id, Amount: 1000})
	require.NoError(t, err)
	assert.Equal(t, 700.0, first.Split.NewCapitalRemaining)

	second, err := svc.ApplyRent(context.Background(), ApplyRentInput{BillboardID: id, Amount: 1000})
	require.NoError(t, err)
	assert.Equal(t, 400.0, second.Split.NewCapitalRemaining)
	assert.Equal(t, 400.0, ledger.capital)
}

func TestApplyRentRejectsNonSharedBillboard(t *testing.T) {
	id := uuid.New()
	boards := &fakeBillboardStore{boards: map[uuid.UUID]*model.Billboard{
		id: {ID: id, Name: "لوحة عادية", IsPartnership: false},
	}}
	svc := NewRentService(boards, &fakeLedger{}, "الشركة", zerolog.Nop())

	_, err := svc.ApplyRent(context.Background(), ApplyRentInput{BillboardID: id, Amount: 1000})
	require.ErrorIs(t, err, ErrNotShared)
}

func TestApplyRentValidatesInput(t *testing.T) {
	svc := NewRentService(&fakeBillboardStore{}, &fakeLedger{}, "الشركة", zerolog.Nop())

	_, err := svc.ApplyRent(context.Background(), ApplyRentInput{BillboardID: uuid.New(), Amount: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ApplyRent(context.Background(), ApplyRentInput{BillboardID: uuid.New(), Amount: 100})
	require.ErrorIs(t, err, ErrNotFound)
}
