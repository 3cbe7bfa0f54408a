package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/2beens/fitlifecom/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// Api talks to the fitness backend. It owns no state besides the base
// URL and the HTTP client it is given; retries and timeouts are the
// client's concern.
type Api struct {
	baseURL    string
	httpClient *http.Client
}

func NewApi(baseURL string, httpClient *http.Client) *Api {
	return &Api{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type mealsResponse struct {
	Meals []Meal `json:"meals"`
}

func (a *Api) Meals(ctx context.Context, userID string) (meals []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.meals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	url := fmt.Sprintf("%s/get-meals/%s", a.baseURL, userID)
	log.Debugf("nutrition-api: getting meals: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := readOkResponse(resp)
	if err != nil {
		return nil, err
	}

	var mealsResp mealsResponse
	if err := json.Unmarshal(respBytes, &mealsResp); err != nil {
		return nil, fmt.Errorf("unmarshal meals response: %w", err)
	}

	return mealsResp.Meals, nil
}

type UpdateMealPeriodParams struct {
	MealID string `json:"mealId"`
	Period Period `json:"period"`
	Email  string `json:"email"`
}

func (a *Api) UpdateMealPeriod(ctx context.Context, params UpdateMealPeriodParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.updateMealPeriod")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	log.Debugf("nutrition-api: update meal %s period to %s", params.MealID, params.Period)

	return a.sendJSON(ctx, http.MethodPut, "/update-meal-period", params)
}

type deleteMealParams struct {
	Email  string `json:"email"`
	MealID string `json:"mealId"`
}

func (a *Api) DeleteMeal(ctx context.Context, email, mealID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.deleteMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	log.Debugf("nutrition-api: delete meal: %s", mealID)

	return a.sendJSON(ctx, http.MethodDelete, "/delete-meal", deleteMealParams{
		Email:  email,
		MealID: mealID,
	})
}

type saveMealParams struct {
	Email    string       `json:"email"`
	MealData MealAnalysis `json:"mealData"`
}

func (a *Api) SaveMeal(ctx context.Context, email string, analysis MealAnalysis) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.saveMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	log.Debugf("nutrition-api: save meal: %s", analysis.FoodName)

	return a.sendJSON(ctx, http.MethodPost, "/save-meal", saveMealParams{
		Email:    email,
		MealData: analysis,
	})
}

type analyzeImageResponse struct {
	Result json.RawMessage `json:"result"`
}

// AnalyzeImage sends a food photo to the analyzer and returns its
// verdict. The backend sometimes wraps the result in a JSON-encoded
// string, so the payload is decoded twice when needed.
func (a *Api) AnalyzeImage(ctx context.Context, fileName string, image io.Reader) (analysis *MealAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.analyzeImage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var body bytes.Buffer
	mpWriter := multipart.NewWriter(&body)
	part, err := mpWriter.CreateFormFile("image", fileName)
	if err != nil {
		return nil, fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("copy image to multipart: %w", err)
	}
	if err := mpWriter.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	url := a.baseURL + "/analyze-image"
	log.Debugf("nutrition-api: analyzing image: %s", fileName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mpWriter.FormDataContentType())

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := readOkResponse(resp)
	if err != nil {
		return nil, err
	}

	var analyzeResp analyzeImageResponse
	if err := json.Unmarshal(respBytes, &analyzeResp); err != nil {
		return nil, fmt.Errorf("unmarshal analyze response: %w", err)
	}

	resultBytes := []byte(analyzeResp.Result)
	var encoded string
	if err := json.Unmarshal(resultBytes, &encoded); err == nil {
		// result came as a JSON string carrying the real payload
		resultBytes = []byte(encoded)
	}

	analysis = &MealAnalysis{}
	if err := json.Unmarshal(resultBytes, analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis result: %w", err)
	}

	return analysis, nil
}

type waterResponse struct {
	WaterAmount float64 `json:"waterAmount"`
}

func (a *Api) Water(ctx context.Context, userID string) (amount float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.water")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	url := fmt.Sprintf("%s/get-water/%s", a.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := readOkResponse(resp)
	if err != nil {
		return 0, err
	}

	var waterResp waterResponse
	if err := json.Unmarshal(respBytes, &waterResp); err != nil {
		return 0, fmt.Errorf("unmarshal water response: %w", err)
	}

	return waterResp.WaterAmount, nil
}

type updateWaterParams struct {
	Email       string  `json:"email"`
	WaterAmount float64 `json:"waterAmount"`
}

func (a *Api) UpdateWater(ctx context.Context, email string, amount float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.updateWater")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return a.sendJSON(ctx, http.MethodPost, "/update-water", updateWaterParams{
		Email:       email,
		WaterAmount: amount,
	})
}

func (a *Api) sendJSON(ctx context.Context, method, path string, payload any) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, bytes.NewReader(payloadBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if _, err := readOkResponse(resp); err != nil {
		return err
	}

	return nil
}

// readOkResponse drains the body and fails on non-2xx status codes,
// surfacing the backend's message or error field when present.
func readOkResponse(resp *http.Response) ([]byte, error) {
	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response bytes: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.Unmarshal(respBytes, &errResp)
		reason := errResp.Error
		if reason == "" {
			reason = errResp.Message
		}
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("backend status %d: %s", resp.StatusCode, reason)
	}

	return respBytes, nil
}
