package nutrition

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Period is one of the four meal board columns.
// The labels match what the frontend renders, verbatim.
type Period string

const (
	PeriodBreakfast Period = "Kahvaltı"
	PeriodLunch     Period = "Öğle Yemeği"
	PeriodDinner    Period = "Akşam Yemeği"
	PeriodSnack     Period = "Ara Öğün"
)

var allPeriods = [4]Period{PeriodBreakfast, PeriodLunch, PeriodDinner, PeriodSnack}

func Periods() []Period {
	return allPeriods[:]
}

// ParsePeriod maps a raw label to one of the four known meal periods,
// case-insensitively. Unknown and empty labels resolve to breakfast.
func ParsePeriod(raw string) Period {
	for _, p := range allPeriods {
		if strings.EqualFold(string(p), raw) {
			return p
		}
	}
	return PeriodBreakfast
}

// Meal is a single logged meal record. The backend owns the durable copy
// and assigns the id; the client only ever changes the period, or deletes.
type Meal struct {
	ID       string    `json:"_id"`
	FoodName string    `json:"food_name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Date     time.Time `json:"date"`
	Period   Period    `json:"period"`
}

func (m *Meal) UnmarshalJSON(data []byte) error {
	type alias Meal
	aux := struct {
		*alias
		Date   string `json:"date"`
		Period string `json:"period"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	m.Period = ParsePeriod(aux.Period)

	// a malformed date leaves the zero time on the record; aggregation
	// skips such records instead of failing the whole snapshot
	if date, err := parseMealDate(aux.Date); err == nil {
		m.Date = date
	}

	return nil
}

var mealDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseMealDate(raw string) (time.Time, error) {
	var date time.Time
	var err error
	for _, layout := range mealDateLayouts {
		if date, err = time.Parse(layout, raw); err == nil {
			return date, nil
		}
	}
	return time.Time{}, err
}

// MealAnalysis is the AI food photo analyzer's verdict on a single photo.
type MealAnalysis struct {
	FoodName        string  `json:"food_name"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Sugar           float64 `json:"sugar"`
	Fat             float64 `json:"fat"`
	HealthTip       string  `json:"health_tip"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	Period          string  `json:"period"`
}

// NewPendingMeal builds a meal record from an analysis result, with a
// synthesized id, for records the backend has not persisted yet.
func NewPendingMeal(analysis MealAnalysis, now time.Time) Meal {
	return Meal{
		ID:       "pending-" + uuid.NewString(),
		FoodName: analysis.FoodName,
		Calories: analysis.Calories,
		Protein:  analysis.Protein,
		Carbs:    analysis.Carbs,
		Fat:      analysis.Fat,
		Date:     now,
		Period:   ParsePeriod(analysis.Period),
	}
}
