package nutrition

import (
	"time"

	"github.com/2beens/fitlifecom/internal/program"
)

// RingCircumference is the dash array length of the dashboard progress
// rings; the offset below is derived against it.
const RingCircumference = 264.0

const (
	daysPerWeek  = 7
	dayKeyLayout = "2006-01-02"
)

// MacroTotals is a sum of the four tracked macros over some set of meals.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (t *MacroTotals) add(m Meal) {
	t.Calories += m.Calories
	t.Protein += m.Protein
	t.Carbs += m.Carbs
	t.Fat += m.Fat
}

// DayKey renders a time as the calendar-day key used across payloads.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DailyTotals sums the macros of all meals logged on the given
// calendar day. Day comparison happens in day's location.
func DailyTotals(meals []Meal, day time.Time) MacroTotals {
	var totals MacroTotals
	for _, m := range meals {
		if m.Date.IsZero() {
			continue
		}
		if sameDay(m.Date.In(day.Location()), day) {
			totals.add(m)
		}
	}
	return totals
}

// WeekRange returns the Monday 00:00:00 start and Sunday 23:59:59 end
// of the week containing ref, in ref's location.
func WeekRange(ref time.Time) (start, end time.Time) {
	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week, it does not start one
	}
	year, month, day := ref.Date()
	start = time.Date(year, month, day-(weekday-1), 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end
}

// WeeklyTotals sums the macros of all meals within the week containing
// ref, both boundary days inclusive. Records without a usable date are
// skipped.
func WeeklyTotals(meals []Meal, ref time.Time) MacroTotals {
	start, end := WeekRange(ref)

	var totals MacroTotals
	for _, m := range meals {
		if m.Date.IsZero() {
			continue
		}
		date := m.Date.In(ref.Location())
		if date.Before(start) || date.After(end) {
			continue
		}
		totals.add(m)
	}
	return totals
}

// MacroProgress describes how one macro tracks against its weekly
// target. Percentage is capped at 100, Diff is not; a positive Diff
// means the target was exceeded.
type MacroProgress struct {
	Consumed   float64 `json:"consumed"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
	Diff       float64 `json:"diff"`
	RingOffset float64 `json:"ringOffset"`
}

// WeeklyProgress holds per-macro progress for the dashboard rings.
type WeeklyProgress struct {
	Calories MacroProgress `json:"calories"`
	Protein  MacroProgress `json:"protein"`
	Carbs    MacroProgress `json:"carbs"`
	Fats     MacroProgress `json:"fats"`
}

func macroProgress(consumed, dailyTarget float64) MacroProgress {
	target := dailyTarget * daysPerWeek

	var pct float64
	if target > 0 {
		pct = consumed / target * 100
		if pct > 100 {
			pct = 100
		}
	}

	return MacroProgress{
		Consumed:   consumed,
		Target:     target,
		Percentage: pct,
		Diff:       consumed - target,
		RingOffset: RingCircumference - RingCircumference*pct/100,
	}
}

// Progress computes the weekly progress of consumed macros against
// daily targets. Targets are expected to already carry their defaults.
func Progress(consumed MacroTotals, targets program.NutritionTargets) WeeklyProgress {
	return WeeklyProgress{
		Calories: macroProgress(consumed.Calories, targets.Calories),
		Protein:  macroProgress(consumed.Protein, targets.Protein),
		Carbs:    macroProgress(consumed.Carbs, targets.Carbs),
		Fats:     macroProgress(consumed.Fat, targets.Fats),
	}
}

// CaloriesByDay maps every meal's calendar day to its calorie sum,
// keyed yyyy-MM-dd, for the calendar heat map. Undated records are
// skipped.
func CaloriesByDay(meals []Meal) map[string]float64 {
	byDay := make(map[string]float64)
	for _, m := range meals {
		if m.Date.IsZero() {
			continue
		}
		byDay[DayKey(m.Date)] += m.Calories
	}
	return byDay
}

// MealsByPeriod groups the meals of one calendar day into the four
// board columns, preserving record order within each column.
func MealsByPeriod(meals []Meal, day time.Time) map[Period][]Meal {
	grouped := make(map[Period][]Meal, len(allPeriods))
	for _, p := range allPeriods {
		grouped[p] = []Meal{}
	}
	for _, m := range meals {
		if m.Date.IsZero() {
			continue
		}
		if sameDay(m.Date.In(day.Location()), day) {
			grouped[m.Period] = append(grouped[m.Period], m)
		}
	}
	return grouped
}
