package program

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/fitlifecom/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// Api fetches AI generated programs from the fitness backend.
// Responses are cached, the backend regenerates programs rarely.
type Api struct {
	cache       *freecache.Cache
	baseURL     string
	httpClient  *http.Client
	cacheExpire int // seconds
}

func NewApi(baseURL string, httpClient *http.Client, cacheSizeMegabytes, cacheExpireSeconds int) *Api {
	megabyte := 1024 * 1024
	return &Api{
		baseURL:     baseURL,
		httpClient:  httpClient,
		cache:       freecache.NewCache(cacheSizeMegabytes * megabyte),
		cacheExpire: cacheExpireSeconds,
	}
}

// GetProgram returns the user's program, or nil when none exists.
// The backend signals "no program" with a {message} shaped body; an
// error-with-message body shares that shape and both resolve to nil.
func (api *Api) GetProgram(ctx context.Context, userID string) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "programApi.getProgram")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := fmt.Sprintf("program::%s", userID)
	if programBytes, err := api.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found program for %s in cache", userID)
		if p, err := decodeProgram(programBytes); err == nil {
			return p, nil
		} else {
			log.Errorf("failed to decode cached program for %s: %s", userID, err)
		}
	}

	programUrl := fmt.Sprintf("%s/get-program/%s", api.baseURL, userID)
	log.Debugf("calling program api: %s", programUrl)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, programUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read program api response bytes: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("program api response status: %d", resp.StatusCode)
	}

	p, err := decodeProgram(respBytes)
	if err != nil {
		return nil, fmt.Errorf("decode program api response: %w", err)
	}

	if err := api.cache.Set([]byte(cacheKey), respBytes, api.cacheExpire); err != nil {
		log.Errorf("failed to cache program for %s: %s", userID, err)
	}

	return p, nil
}

// decodeProgram returns nil (and no error) for the {message}/{error}
// sentinel bodies, and the decoded program otherwise.
func decodeProgram(data []byte) (*Program, error) {
	var sentinel struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &sentinel); err == nil {
		if sentinel.Message != "" || sentinel.Error != "" {
			return nil, nil
		}
	}

	p := &Program{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}
