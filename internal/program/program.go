package program

// Program is the AI generated workout and nutrition program for a user,
// fetched from the fitness backend once per session and treated read-only.
type Program struct {
	ProgramName      string           `json:"program_name"`
	Motivation       string           `json:"motivation"`
	NutritionTargets NutritionTargets `json:"nutrition_targets"`
	DailyCommands    []string         `json:"daily_commands"`
	Schedule         []ScheduleItem   `json:"schedule"`
}

type ScheduleItem struct {
	Day       string         `json:"day"`
	Exercises []ExerciseItem `json:"exercises"`
}

type ExerciseItem struct {
	Name       string `json:"name"`
	Sets       string `json:"sets"`
	Reps       string `json:"reps"`
	Weight     string `json:"weight,omitempty"`
	TargetSets string `json:"target_sets,omitempty"`
	TargetReps string `json:"target_reps,omitempty"`
}

// NutritionTargets are the daily macro and calorie goals of a program.
type NutritionTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// fallback targets, used when no program exists or a program
// lacks one of the fields; each field falls back independently
const (
	DefaultCaloriesTarget = 2500
	DefaultProteinTarget  = 100
	DefaultCarbsTarget    = 100
	DefaultFatsTarget     = 100
)

func (t NutritionTargets) WithDefaults() NutritionTargets {
	if t.Calories <= 0 {
		t.Calories = DefaultCaloriesTarget
	}
	if t.Protein <= 0 {
		t.Protein = DefaultProteinTarget
	}
	if t.Carbs <= 0 {
		t.Carbs = DefaultCarbsTarget
	}
	if t.Fats <= 0 {
		t.Fats = DefaultFatsTarget
	}
	return t
}

// Targets resolves the nutrition targets of a (possibly absent) program.
func (p *Program) Targets() NutritionTargets {
	if p == nil {
		return NutritionTargets{}.WithDefaults()
	}
	return p.NutritionTargets.WithDefaults()
}
