package pricing

import "github.com/nurpe/billboard-rentals/internal/units"

// Static one-month base prices used when the live table has no matching row.
// Keyed by canonical size and level; category factors are applied on top so
// every (size, level, category) triple resolves to a concrete base.
var fallbackBase = map[string]map[string]float64{
	"2x6": {
		units.LevelStandard:  900,
		units.LevelExcellent: 1100,
		units.LevelVIP:       1400,
	},
	"3x9": {
		units.LevelStandard:  1400,
		units.LevelExcellent: 1700,
		units.LevelVIP:       2100,
	},
	"4x12": {
		units.LevelStandard:  2000,
		units.LevelExcellent: 2400,
		units.LevelVIP:       3000,
	},
	"6x18": {
		units.LevelStandard:  3200,
		units.LevelExcellent: 3800,
		units.LevelVIP:       4700,
	},
	"8x24": {
		units.LevelStandard:  4800,
		units.LevelExcellent: 5600,
		units.LevelVIP:       7000,
	},
}

var categoryFactor = map[string]float64{
	"عادي":    1.0,
	"المدينة": 0.9,
	"مسوق":    0.85,
	"شركات":   1.1,
}

// Duration multipliers for the static table. Buckets beyond these fall back
// to a linear base*months estimate.
var durationMultiplier = map[int]float64{
	1:  1,
	2:  1.8,
	3:  2.5,
	6:  4.5,
	12: 8,
}

// monthlyBuckets are the only durations the live pricing table prices directly.
var monthlyBuckets = map[int]struct{}{1: {}, 2: {}, 3: {}, 6: {}, 12: {}}

func fallbackMonthlyBase(size, level, category string) (float64, bool) {
	levels, ok := fallbackBase[size]
	if !ok {
		return 0, false
	}
	base, ok := levels[level]
	if !ok {
		return 0, false
	}
	factor, ok := categoryFactor[category]
	if !ok {
		factor = 1.0
	}
	return base * factor, true
}
