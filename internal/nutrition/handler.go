package nutrition

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/fitlifecom/internal/program"
	"github.com/2beens/fitlifecom/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// analyzer image uploads above this size get rejected before reading
const maxAnalyzeImageBytes = 10 << 20

type mealsStore interface {
	Load(ctx context.Context, userID string, quiet bool) error
	ReassignPeriod(ctx context.Context, mealID string, newPeriod Period, userID string) bool
	DeleteMeal(ctx context.Context, mealID, userID string) bool
	SaveAnalyzed(ctx context.Context, analysis MealAnalysis, userID string) bool
	SelectDate(t time.Time)
	SelectedDate() time.Time
	Meals() []Meal
	Loading() bool
	Targets() program.NutritionTargets
}

type dragEndCoordinator interface {
	HandleDragEnd(ctx context.Context, drop DropResult, userID string) bool
}

type analyzerApi interface {
	AnalyzeImage(ctx context.Context, fileName string, image io.Reader) (*MealAnalysis, error)
	Water(ctx context.Context, userID string) (float64, error)
	UpdateWater(ctx context.Context, email string, amount float64) error
}

type Handler struct {
	store       mealsStore
	coordinator dragEndCoordinator
	analyzer    analyzerApi
	notifier    *MemoryNotifier
	userID      string
}

func NewHandler(
	store mealsStore,
	coordinator dragEndCoordinator,
	analyzer analyzerApi,
	notifier *MemoryNotifier,
	userID string,
) *Handler {
	return &Handler{
		store:       store,
		coordinator: coordinator,
		analyzer:    analyzer,
		notifier:    notifier,
		userID:      userID,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/nutrition/meals", handler.handleGetMeals).Methods("GET").Name("get-meals")
	router.HandleFunc("/nutrition/meals", handler.handleSaveMeal).Methods("POST", "OPTIONS").Name("save-meal")
	router.HandleFunc("/nutrition/meals/day/{date}", handler.handleGetMealsOfDay).Methods("GET").Name("meals-of-day")
	router.HandleFunc("/nutrition/meals/{id}/period", handler.handleUpdatePeriod).Methods("PUT", "OPTIONS").Name("update-meal-period")
	router.HandleFunc("/nutrition/meals/{id}", handler.handleDeleteMeal).Methods("DELETE", "OPTIONS").Name("delete-meal")
	router.HandleFunc("/nutrition/dragend", handler.handleDragEnd).Methods("POST", "OPTIONS").Name("drag-end")
	router.HandleFunc("/nutrition/selected-date", handler.handleGetSelectedDate).Methods("GET").Name("get-selected-date")
	router.HandleFunc("/nutrition/selected-date", handler.handleSelectDate).Methods("POST", "OPTIONS").Name("select-date")
	router.HandleFunc("/nutrition/dashboard", handler.handleDashboard).Methods("GET").Name("dashboard")
	router.HandleFunc("/nutrition/calendar", handler.handleCalendar).Methods("GET").Name("calendar")
	router.HandleFunc("/nutrition/analyze", handler.handleAnalyze).Methods("POST", "OPTIONS").Name("analyze-image")
	router.HandleFunc("/nutrition/water", handler.handleUpdateWater).Methods("POST", "OPTIONS").Name("update-water")
	router.HandleFunc("/nutrition/refresh", handler.handleRefresh).Methods("POST", "OPTIONS").Name("refresh")
}

type mealsResponsePayload struct {
	Meals   []Meal `json:"meals"`
	Total   int    `json:"total"`
	Loading bool   `json:"loading"`
}

func (handler *Handler) handleGetMeals(w http.ResponseWriter, r *http.Request) {
	meals := handler.store.Meals()

	respJson, err := json.Marshal(mealsResponsePayload{
		Meals:   meals,
		Total:   len(meals),
		Loading: handler.store.Loading(),
	})
	if err != nil {
		log.Errorf("marshal meals error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) handleGetMealsOfDay(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	day, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	grouped := MealsByPeriod(handler.store.Meals(), day)

	respJson, err := json.Marshal(grouped)
	if err != nil {
		log.Errorf("marshal meals of day error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

type mutationResponse struct {
	Ok            bool     `json:"ok"`
	Notifications []string `json:"notifications,omitempty"`
}

func (handler *Handler) writeMutationOutcome(w http.ResponseWriter, ok bool) {
	respJson, err := json.Marshal(mutationResponse{
		Ok:            ok,
		Notifications: handler.notifier.Drain(),
	})
	if err != nil {
		log.Errorf("marshal mutation outcome error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

type updatePeriodRequest struct {
	Period string `json:"period"`
}

func (handler *Handler) handleUpdatePeriod(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	mealID := vars["id"]
	if mealID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var updateReq updatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		log.Errorf("update meal period, unmarshal json params: %s", err)
		http.Error(w, "update meal period failed", http.StatusBadRequest)
		return
	}
	if updateReq.Period == "" {
		http.Error(w, "error, period empty", http.StatusBadRequest)
		return
	}

	ok := handler.store.ReassignPeriod(r.Context(), mealID, ParsePeriod(updateReq.Period), handler.userID)
	handler.writeMutationOutcome(w, ok)
}

func (handler *Handler) handleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	mealID := vars["id"]
	if mealID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	ok := handler.store.DeleteMeal(r.Context(), mealID, handler.userID)
	handler.writeMutationOutcome(w, ok)
}

func (handler *Handler) handleDragEnd(w http.ResponseWriter, r *http.Request) {
	var drop DropResult
	if err := json.NewDecoder(r.Body).Decode(&drop); err != nil {
		log.Errorf("drag end, unmarshal json params: %s", err)
		http.Error(w, "drag end failed", http.StatusBadRequest)
		return
	}
	if drop.MealID == "" {
		http.Error(w, "error, draggableId empty", http.StatusBadRequest)
		return
	}

	ok := handler.coordinator.HandleDragEnd(r.Context(), drop, handler.userID)
	handler.writeMutationOutcome(w, ok)
}

type selectedDateResponse struct {
	Date string `json:"date"`
}

func (handler *Handler) handleGetSelectedDate(w http.ResponseWriter, r *http.Request) {
	respJson, err := json.Marshal(selectedDateResponse{
		Date: DayKey(handler.store.SelectedDate()),
	})
	if err != nil {
		log.Errorf("marshal selected date error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

type selectDateRequest struct {
	Date string `json:"date"`
}

func (handler *Handler) handleSelectDate(w http.ResponseWriter, r *http.Request) {
	var selectReq selectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&selectReq); err != nil {
		log.Errorf("select date, unmarshal json params: %s", err)
		http.Error(w, "select date failed", http.StatusBadRequest)
		return
	}

	date, err := time.Parse("2006-01-02", selectReq.Date)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	handler.store.SelectDate(date)

	pkg.WriteTextResponseOK(w, fmt.Sprintf("selected:%s", selectReq.Date))
}

type dashboardResponse struct {
	Date        string         `json:"date"`
	Daily       MacroTotals    `json:"daily"`
	Weekly      MacroTotals    `json:"weekly"`
	Progress    WeeklyProgress `json:"progress"`
	WaterAmount float64        `json:"waterAmount"`
}

func (handler *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	meals := handler.store.Meals()
	selectedDate := handler.store.SelectedDate()

	weekly := WeeklyTotals(meals, selectedDate)

	// water is cosmetic on the dashboard, its failure must not sink the whole payload
	water, err := handler.analyzer.Water(r.Context(), handler.userID)
	if err != nil {
		log.Errorf("dashboard, get water: %s", err)
	}

	respJson, err := json.Marshal(dashboardResponse{
		Date:        DayKey(selectedDate),
		Daily:       DailyTotals(meals, selectedDate),
		Weekly:      weekly,
		Progress:    Progress(weekly, handler.store.Targets()),
		WaterAmount: water,
	})
	if err != nil {
		log.Errorf("marshal dashboard error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

type calendarResponse struct {
	CaloriesByDay map[string]float64 `json:"caloriesByDay"`
}

func (handler *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	respJson, err := json.Marshal(calendarResponse{
		CaloriesByDay: CaloriesByDay(handler.store.Meals()),
	})
	if err != nil {
		log.Errorf("marshal calendar error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeImageBytes)
	if err := r.ParseMultipartForm(maxAnalyzeImageBytes); err != nil {
		log.Errorf("analyze image, parse multipart form: %s", err)
		http.Error(w, "error, invalid image upload", http.StatusBadRequest)
		return
	}

	image, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "error, image missing", http.StatusBadRequest)
		return
	}
	defer image.Close()

	analysis, err := handler.analyzer.AnalyzeImage(r.Context(), header.Filename, image)
	if err != nil {
		log.Errorf("analyze image failed: %s", err)
		http.Error(w, "analyze image failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(analysis)
	if err != nil {
		log.Errorf("marshal analysis error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) handleSaveMeal(w http.ResponseWriter, r *http.Request) {
	var analysis MealAnalysis
	if err := json.NewDecoder(r.Body).Decode(&analysis); err != nil {
		log.Errorf("save meal, unmarshal json params: %s", err)
		http.Error(w, "save meal failed", http.StatusBadRequest)
		return
	}
	if analysis.FoodName == "" {
		http.Error(w, "error, food name empty", http.StatusBadRequest)
		return
	}

	ok := handler.store.SaveAnalyzed(r.Context(), analysis, handler.userID)
	handler.writeMutationOutcome(w, ok)
}

type updateWaterRequest struct {
	WaterAmount float64 `json:"waterAmount"`
}

func (handler *Handler) handleUpdateWater(w http.ResponseWriter, r *http.Request) {
	var waterReq updateWaterRequest
	if err := json.NewDecoder(r.Body).Decode(&waterReq); err != nil {
		log.Errorf("update water, unmarshal json params: %s", err)
		http.Error(w, "update water failed", http.StatusBadRequest)
		return
	}

	if err := handler.analyzer.UpdateWater(r.Context(), handler.userID, waterReq.WaterAmount); err != nil {
		log.Errorf("update water failed: %s", err)
		http.Error(w, "update water failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := handler.store.Load(r.Context(), handler.userID, true); err != nil {
		log.Errorf("refresh meals failed: %s", err)
		http.Error(w, "refresh failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "refreshed")
}
