package nutrition

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=nutrition_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/2beens/fitlifecom/internal/program"
	"github.com/2beens/fitlifecom/internal/telemetry/metrics"
	"github.com/2beens/fitlifecom/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const (
	notifyPeriodChangeFailed = "Değişiklik kaydedilemedi, geri alınıyor."
	notifyDeleteFailed       = "Yemek silinemedi."
	notifySaveFailed         = "Yemek günlüğüne eklenemedi."
)

type mealsApi interface {
	Meals(ctx context.Context, userID string) ([]Meal, error)
	UpdateMealPeriod(ctx context.Context, params UpdateMealPeriodParams) error
	DeleteMeal(ctx context.Context, email, mealID string) error
	SaveMeal(ctx context.Context, email string, analysis MealAnalysis) error
}

type programGetter interface {
	GetProgram(ctx context.Context, userID string) (*program.Program, error)
}

// Store owns the in-memory meal record set for one user, applies
// mutations optimistically and reverts them when the backend rejects
// the change.
//
// Two locks: stateMu guards the record set and the flags so that the
// optimistically changed state stays readable while a backend call is
// in flight; mutationMu serializes whole mutations (apply, confirm,
// roll back) so patches never interleave.
type Store struct {
	mutationMu sync.Mutex
	stateMu    sync.RWMutex

	meals        []Meal
	selectedDate time.Time
	loading      bool
	program      *program.Program

	api        mealsApi
	programApi programGetter
	notifier   Notifier
	metrics    *metrics.Manager
}

func NewStore(
	api mealsApi,
	programApi programGetter,
	notifier Notifier,
	metricsManager *metrics.Manager,
) *Store {
	return &Store{
		meals:        []Meal{},
		selectedDate: time.Now(),
		api:          api,
		programApi:   programApi,
		notifier:     notifier,
		metrics:      metricsManager,
	}
}

// Load replaces the record set with a fresh backend snapshot. With
// quiet set the loading flag is left untouched (background refresh).
// On failure the previous record set survives.
func (s *Store) Load(ctx context.Context, userID string, quiet bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionStore.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !quiet {
		s.setLoading(true)
		defer s.setLoading(false)
	}

	meals, err := s.api.Meals(ctx, userID)
	if err != nil {
		s.metrics.CounterRemoteCalls.WithLabelValues("get_meals", "error").Inc()
		return fmt.Errorf("load meals: %w", err)
	}
	s.metrics.CounterRemoteCalls.WithLabelValues("get_meals", "ok").Inc()
	s.metrics.CounterMealsLoaded.Add(float64(len(meals)))

	s.stateMu.Lock()
	s.meals = meals
	s.stateMu.Unlock()

	log.Debugf("nutrition store: loaded %d meals", len(meals))

	return nil
}

// ReassignPeriod moves a meal to another period. The change is applied
// in place before the backend confirms it and reverted if the backend
// rejects it. A missing meal id is a no-op. Returns whether the change
// stuck.
func (s *Store) ReassignPeriod(ctx context.Context, mealID string, newPeriod Period, userID string) bool {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionStore.reassignPeriod")
	defer span.End()

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	s.metrics.CounterMealMutations.WithLabelValues("reassign_period").Inc()

	s.stateMu.Lock()
	idx := slices.IndexFunc(s.meals, func(m Meal) bool { return m.ID == mealID })
	if idx < 0 {
		s.stateMu.Unlock()
		log.Warnf("nutrition store: reassign period, meal %s not found", mealID)
		return true
	}
	oldPeriod := s.meals[idx].Period
	s.meals[idx].Period = newPeriod
	s.stateMu.Unlock()

	err := s.api.UpdateMealPeriod(ctx, UpdateMealPeriodParams{
		MealID: mealID,
		Period: newPeriod,
		Email:  userID,
	})
	if err == nil {
		s.metrics.CounterRemoteCalls.WithLabelValues("update_meal_period", "ok").Inc()
		return true
	}
	s.metrics.CounterRemoteCalls.WithLabelValues("update_meal_period", "error").Inc()
	log.Errorf("nutrition store: update meal %s period failed, rolling back: %s", mealID, err)

	s.stateMu.Lock()
	// the index can shift if a reload landed in between, find it again
	if idx := slices.IndexFunc(s.meals, func(m Meal) bool { return m.ID == mealID }); idx >= 0 {
		s.meals[idx].Period = oldPeriod
	}
	s.stateMu.Unlock()

	s.metrics.CounterMutationRollbacks.Inc()
	s.notifier.Notify(notifyPeriodChangeFailed)

	return false
}

// DeleteMeal removes a meal optimistically. On backend failure the
// removed record is reinserted at its original position. A missing
// meal id is a no-op. Returns whether the delete stuck.
func (s *Store) DeleteMeal(ctx context.Context, mealID, userID string) bool {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionStore.deleteMeal")
	defer span.End()

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	s.metrics.CounterMealMutations.WithLabelValues("delete").Inc()

	s.stateMu.Lock()
	idx := slices.IndexFunc(s.meals, func(m Meal) bool { return m.ID == mealID })
	if idx < 0 {
		s.stateMu.Unlock()
		log.Warnf("nutrition store: delete, meal %s not found", mealID)
		return true
	}
	removed := s.meals[idx]
	s.meals = slices.Delete(s.meals, idx, idx+1)
	s.stateMu.Unlock()

	if err := s.api.DeleteMeal(ctx, userID, mealID); err != nil {
		s.metrics.CounterRemoteCalls.WithLabelValues("delete_meal", "error").Inc()
		log.Errorf("nutrition store: delete meal %s failed, rolling back: %s", mealID, err)

		s.stateMu.Lock()
		if idx > len(s.meals) {
			idx = len(s.meals)
		}
		s.meals = slices.Insert(s.meals, idx, removed)
		s.stateMu.Unlock()

		s.metrics.CounterMutationRollbacks.Inc()
		s.notifier.Notify(notifyDeleteFailed)

		return false
	}

	s.metrics.CounterRemoteCalls.WithLabelValues("delete_meal", "ok").Inc()

	return true
}

// SaveAnalyzed appends a pending record for an analyzed meal, persists
// it on the backend and reloads quietly so the synthesized id gets
// replaced with the backend's. On failure the pending record is
// removed again. Returns whether the save stuck.
func (s *Store) SaveAnalyzed(ctx context.Context, analysis MealAnalysis, userID string) bool {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionStore.saveAnalyzed")
	defer span.End()

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	s.metrics.CounterMealMutations.WithLabelValues("save").Inc()

	pending := NewPendingMeal(analysis, time.Now())

	s.stateMu.Lock()
	s.meals = append(s.meals, pending)
	s.stateMu.Unlock()

	if err := s.api.SaveMeal(ctx, userID, analysis); err != nil {
		s.metrics.CounterRemoteCalls.WithLabelValues("save_meal", "error").Inc()
		log.Errorf("nutrition store: save meal %q failed, rolling back: %s", analysis.FoodName, err)

		s.stateMu.Lock()
		if idx := slices.IndexFunc(s.meals, func(m Meal) bool { return m.ID == pending.ID }); idx >= 0 {
			s.meals = slices.Delete(s.meals, idx, idx+1)
		}
		s.stateMu.Unlock()

		s.metrics.CounterMutationRollbacks.Inc()
		s.notifier.Notify(notifySaveFailed)

		return false
	}

	s.metrics.CounterRemoteCalls.WithLabelValues("save_meal", "ok").Inc()

	if err := s.Load(ctx, userID, true); err != nil {
		log.Errorf("nutrition store: reload after save failed: %s", err)
	}

	return true
}

// FetchProgram gets the user's active program snapshot. No program on
// the backend is a valid state, not an error.
func (s *Store) FetchProgram(ctx context.Context, userID string) error {
	prog, err := s.programApi.GetProgram(ctx, userID)
	if err != nil {
		s.metrics.CounterRemoteCalls.WithLabelValues("get_program", "error").Inc()
		return fmt.Errorf("fetch program: %w", err)
	}
	s.metrics.CounterRemoteCalls.WithLabelValues("get_program", "ok").Inc()

	s.stateMu.Lock()
	s.program = prog
	s.stateMu.Unlock()

	return nil
}

func (s *Store) Program() *program.Program {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.program
}

// Targets returns the nutrition targets of the active program, with
// per-field defaults filled in; usable even without a program.
func (s *Store) Targets() program.NutritionTargets {
	return s.Program().Targets()
}

func (s *Store) SelectDate(t time.Time) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.selectedDate = t
}

func (s *Store) SelectedDate() time.Time {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.selectedDate
}

// Meals returns a copy of the record set; callers can mutate it freely.
func (s *Store) Meals() []Meal {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return slices.Clone(s.meals)
}

func (s *Store) Loading() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.loading
}

func (s *Store) setLoading(loading bool) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.loading = loading
}
