package aquarium

import (
	"context"
	"net/http"
	"time"

	"aquarium/internal/config"
	"aquarium/internal/domain"
	"aquarium/internal/domain/jsoncfg"
	"aquarium/internal/http/response"
	"aquarium/internal/infra"
	"aquarium/internal/observability"
	"aquarium/internal/providers/mastodon"
)

// Fetcher retrieves the weekly activity history of an instance.
type Fetcher interface {
	FetchActivity(ctx context.Context) (domain.ActivityHistory, error)
}

// Options wires a Service. Zero values fall back to the process environment
// and a real Mastodon client.
type Options struct {
	LoadConfig func() (config.Activity, error)
	NewFetcher func(cfg config.Activity) (Fetcher, error)
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Service runs one aquarium invocation per call. It keeps no state between
// calls: configuration, client and upstream request are all per invocation.
type Service struct {
	loadConfig func() (config.Activity, error)
	newFetcher func(cfg config.Activity) (Fetcher, error)
	logger     *infra.Logger
}

// NewService constructs a Service.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	s := &Service{
		loadConfig: opts.LoadConfig,
		newFetcher: opts.NewFetcher,
		logger:     logger,
	}
	if s.loadConfig == nil {
		s.loadConfig = config.Load
	}
	if s.newFetcher == nil {
		httpClient := opts.HTTPClient
		s.newFetcher = func(cfg config.Activity) (Fetcher, error) {
			return mastodon.NewClient(mastodon.Options{
				BaseURL:    cfg.APIURL,
				UserAgent:  cfg.UserAgent,
				HTTPClient: httpClient,
				Logger:     logger,
			})
		}
	}
	return s
}

// Render produces the aquarium payload and the cache lifetime to serve it with.
func (s *Service) Render(ctx context.Context, locale string) (domain.School, int, error) {
	cfg, err := s.loadConfig()
	if err != nil {
		return domain.School{}, 0, domain.Classify("load config", err)
	}
	catalog, err := s.catalog(cfg)
	if err != nil {
		return domain.School{}, 0, err
	}
	fetcher, err := s.newFetcher(cfg)
	if err != nil {
		return domain.School{}, 0, domain.Classify("new fetcher", err)
	}

	started := time.Now()
	history, err := fetcher.FetchActivity(ctx)
	observability.RecordFetch(started, err)
	if err != nil {
		return domain.School{}, 0, domain.Classify("fetch activity", err)
	}

	school := BuildSchool(history)
	if cfg.Ambassador {
		school = append(school, domain.AmbassadorFish())
	}
	observability.RecordSchool(len(school))
	return domain.School{
		Legend: legendFor(catalog, locale, cfg.Ambassador),
		School: school,
	}, cfg.CacheSeconds, nil
}

// Invoke renders the aquarium and frames it. Failures become a 500 carrying
// only the error kind's message; the cause goes to the log.
func (s *Service) Invoke(ctx context.Context, locale string) response.Response {
	payload, cacheSeconds, err := s.Render(ctx, locale)
	if err != nil {
		tagged := domain.Classify("render", err)
		s.logger.Error().
			Str("kind", tagged.Kind.String()).
			Str("cause", tagged.Cause()).
			Msg("aquarium: invocation failed")
		return s.fail(tagged.Error())
	}
	resp, err := response.BuildSuccess(payload, cacheSeconds)
	if err != nil {
		s.logger.Error().Err(err).Msg("aquarium: build response")
		return s.fail(response.ErrBuild.Error())
	}
	return resp
}

func (s *Service) fail(message string) response.Response {
	resp, err := response.BuildError(message)
	if err != nil {
		s.logger.Error().Err(err).Msg("aquarium: build error response")
		return response.Response{
			Status: http.StatusInternalServerError,
			Header: http.Header{"Content-Type": []string{"application/json"}},
			Body:   []byte(`{"message":"couldn't build response"}`),
		}
	}
	return resp
}

func (s *Service) catalog(cfg config.Activity) (jsoncfg.LegendJSON, error) {
	if cfg.LegendPath == "" {
		return DefaultLegend(InstanceName(cfg.APIURL)), nil
	}
	catalog, err := jsoncfg.LoadLegend(cfg.LegendPath, "")
	if err != nil {
		return jsoncfg.LegendJSON{}, domain.Wrap(domain.KindConfiguration, "load legend", err)
	}
	return *catalog, nil
}
