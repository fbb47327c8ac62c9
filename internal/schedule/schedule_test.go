package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestDistributeEvenlyExactSum(t *testing.T) {
	policy := MonthlyFrom(start)
	for _, tc := range []struct {
		total float64
		count int
	}{
		{100, 3},
		{1000, 6},
		{999.99, 4},
		{0.01, 2},
		{12345.67, 5},
		{50, 1},
	} {
		list := DistributeEvenly(tc.total, tc.count, policy)
		require.Len(t, list, tc.count)
		assert.Equal(t, tc.total, Sum(list), "total=%v count=%d", tc.total, tc.count)
	}
}

func TestDistributeEvenlyRemainderOnLast(t *testing.T) {
	list := DistributeEvenly(100, 3, MonthlyFrom(start))
	require.Len(t, list, 3)
	assert.Equal(t, 33.33, list[0].Amount)
	assert.Equal(t, 33.33, list[1].Amount)
	assert.Equal(t, 33.34, list[2].Amount)
}

func TestDistributeEvenlyPaymentTypeCycleAndDueDates(t *testing.T) {
	list := DistributeEvenly(600, 3, MonthlyFrom(start))
	require.Len(t, list, 3)
	assert.Equal(t, PayOnSigning, list[0].PaymentType)
	assert.Equal(t, PayOnInstallation, list[1].PaymentType)
	assert.Equal(t, PayMonthly, list[2].PaymentType)

	assert.Equal(t, start, list[0].DueDate)
	assert.Equal(t, start.AddDate(0, 1, 0), list[1].DueDate)
	assert.Equal(t, start.AddDate(0, 2, 0), list[2].DueDate)
}

func TestDistributeEvenlyZeroCount(t *testing.T) {
	assert.Nil(t, DistributeEvenly(100, 0, MonthlyFrom(start)))
	assert.Nil(t, DistributeEvenly(100, -2, MonthlyFrom(start)))
}

func TestAddCyclesTypes(t *testing.T) {
	policy := MonthlyFrom(start)
	var list []Installment
	for i := 0; i < 7; i++ {
		list = Add(list, policy)
	}
	assert.Equal(t, PayOnSigning, list[0].PaymentType)
	assert.Equal(t, PayEndOfContract, list[5].PaymentType)
	assert.Equal(t, PayOnSigning, list[6].PaymentType)
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	list := DistributeEvenly(300, 3, MonthlyFrom(start))
	assert.Len(t, Remove(list, -1), 3)
	assert.Len(t, Remove(list, 3), 3)
	assert.Len(t, Remove(list, 1), 2)
}

func TestUpdateOutOfRangeIsNoOp(t *testing.T) {
	list := DistributeEvenly(300, 2, MonthlyFrom(start))
	Update(list, 5, func(inst *Installment) { inst.Amount = 999 })
	assert.Equal(t, 300.0, Sum(list))

	Update(list, 0, func(inst *Installment) { inst.Description = "دفعة أولى" })
	assert.Equal(t, "دفعة أولى", list[0].Description)
}

func TestValidateReportsButNeverCorrects(t *testing.T) {
	list := DistributeEvenly(1000, 4, MonthlyFrom(start))
	v := Validate(list, 1000)
	assert.True(t, v.OK)
	assert.Equal(t, 0.0, v.Difference)

	Update(list, 0, func(inst *Installment) { inst.Amount += 50 })
	v = Validate(list, 1000)
	assert.False(t, v.OK)
	assert.Equal(t, 50.0, v.Difference)
	// The schedule itself is untouched by validation.
	assert.Equal(t, 1050.0, Sum(list))
}
