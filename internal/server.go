package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitlifecom/internal/config"
	"github.com/2beens/fitlifecom/internal/middleware"
	"github.com/2beens/fitlifecom/internal/nutrition"
	"github.com/2beens/fitlifecom/internal/program"
	"github.com/2beens/fitlifecom/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	store       *nutrition.Store
	coordinator *nutrition.Coordinator
	handler     *nutrition.Handler
	notifier    *nutrition.MemoryNotifier

	refreshStop func()

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

func NewServer(ctx context.Context, cfg *config.Config, versionInfo string) (*Server, error) {
	if cfg.UserEmail == "" {
		return nil, errors.New("user email not set")
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitlife", "client", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// the fitness backend is the only remote boundary, retries and the
	// request timeout live here, not in the store
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.BackendRetryMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = time.Duration(cfg.BackendTimeoutSeconds) * time.Second
	retryClient.HTTPClient.Transport = otelhttp.NewTransport(http.DefaultTransport)
	backendHttpClient := retryClient.StandardClient()

	nutritionApi := nutrition.NewApi(cfg.BackendBaseURL, backendHttpClient)
	programApi := program.NewApi(
		cfg.BackendBaseURL,
		backendHttpClient,
		cfg.ProgramCacheSizeMegabytes,
		cfg.ProgramCacheExpirySecs,
	)

	notifier := nutrition.NewMemoryNotifier()
	store := nutrition.NewStore(nutritionApi, programApi, notifier, metricsManager)
	coordinator := nutrition.NewCoordinator(store)

	s := &Server{
		versionInfo: versionInfo,
		config:      cfg,
		store:       store,
		coordinator: coordinator,
		notifier:    notifier,
		handler: nutrition.NewHandler(
			store,
			coordinator,
			nutritionApi,
			notifier,
			cfg.UserEmail,
		),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}

	if err := store.Load(ctx, cfg.UserEmail, false); err != nil {
		log.Errorf("initial meals load failed: %s", err)
	}
	if err := store.FetchProgram(ctx, cfg.UserEmail); err != nil {
		log.Errorf("initial program fetch failed: %s", err)
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitlife-client-router"))

	s.handler.SetupRoutes(r)

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(s.versionInfo)); err != nil {
			log.Errorf("version handler: write response: %s", err)
		}
	}).Methods("GET")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("fitlife client service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.startBackgroundRefresh(ctx)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// startBackgroundRefresh reloads the meal snapshot quietly on a timer
// so the record set does not drift from the backend between mutations.
func (s *Server) startBackgroundRefresh(ctx context.Context) {
	if s.config.MealsRefreshSeconds <= 0 {
		log.Debug("background meals refresh disabled")
		return
	}

	refreshCtx, cancel := context.WithCancel(ctx)
	s.refreshStop = cancel

	interval := time.Duration(s.config.MealsRefreshSeconds) * time.Second
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				log.Debug("background meals refresh stopped")
				return
			case <-ticker.C:
				if err := s.store.Load(refreshCtx, s.config.UserEmail, true); err != nil {
					log.Errorf("background meals refresh: %s", err)
				}
			}
		}
	}()
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.refreshStop != nil {
		s.refreshStop()
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var shutdownErr error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
	}
	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics http server: %w", err))
	}

	log.Warnln("server shut down")

	return shutdownErr
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
