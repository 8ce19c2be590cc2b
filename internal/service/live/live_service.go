package live

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Domenick1991/jetcharter/internal/cache"
	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/Domenick1991/jetcharter/internal/metrics"
)

const (
	SourceOpenSky   = "OpenSky Network"
	SourceOpenMeteo = "Open-Meteo"
	SourceDummy     = "Dummy Data"
	SourceFallback  = "Fallback Data"

	weatherUnavailable = "Weather data unavailable"
)

var errBadCoordinates = errors.New("latitude and longitude must be numbers")

type LiveUseCase interface {
	Tracking(ctx context.Context) domain.Tracking
	RefreshTracking(ctx context.Context) error
	Weather(ctx context.Context, q WeatherQuery) domain.Weather
}

type StateSource interface {
	States(ctx context.Context, box BoundingBox) ([]domain.TrackedFlight, error)
}

type ForecastSource interface {
	Forecast(ctx context.Context, lat, lon float64) (*Forecast, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

type Catalog interface {
	WeatherSite(code string) (domain.Airport, bool)
	FallbackTracking() []domain.TrackedFlight
	FallbackWeather() domain.Weather
}

// WeatherQuery selects a forecast by coordinates or, failing that, by airport code.
type WeatherQuery struct {
	Airport string
	Lat     string
	Lon     string
}

type LiveService struct {
	states    StateSource
	forecasts ForecastSource
	cache     Cache
	catalog   Catalog
	logger    *slog.Logger
}

// NewLiveService wires the upstream clients. cache may be nil.
func NewLiveService(states StateSource, forecasts ForecastSource, cache Cache, catalog Catalog, logger *slog.Logger) *LiveService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveService{states: states, forecasts: forecasts, cache: cache, catalog: catalog, logger: logger}
}

// Tracking never fails: cached or live positions are preferred, canned positions are the
// last resort.
func (s *LiveService) Tracking(ctx context.Context) domain.Tracking {
	var cached domain.Tracking
	if s.cacheGet(ctx, cache.TrackingKey(), &cached) {
		metrics.CacheHits.WithLabelValues("opensky").Inc()
		return cached
	}

	tracking, err := s.fetchTracking(ctx)
	if err != nil {
		s.logger.Warn("opensky unavailable, serving fallback tracking", "error", err)
		metrics.UpstreamFallbacks.WithLabelValues("opensky").Inc()
		return domain.Tracking{Flights: s.catalog.FallbackTracking(), Source: SourceFallback}
	}
	s.cacheSet(ctx, cache.TrackingKey(), tracking)
	return tracking
}

// RefreshTracking fetches live positions and replaces the cached copy.
func (s *LiveService) RefreshTracking(ctx context.Context) error {
	tracking, err := s.fetchTracking(ctx)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.SetJSON(ctx, cache.TrackingKey(), tracking)
}

func (s *LiveService) fetchTracking(ctx context.Context) (domain.Tracking, error) {
	flights, err := s.states.States(ctx, EastCoast)
	if err != nil {
		return domain.Tracking{}, err
	}
	return domain.Tracking{Flights: flights, Source: SourceOpenSky}, nil
}

// Weather resolves the query to a location and fetches its forecast. Explicit coordinates
// win over an airport code; with neither, canned conditions are returned.
func (s *LiveService) Weather(ctx context.Context, q WeatherQuery) domain.Weather {
	lat, lon := strings.TrimSpace(q.Lat), strings.TrimSpace(q.Lon)
	if lat != "" && lon != "" {
		latV, errLat := strconv.ParseFloat(lat, 64)
		lonV, errLon := strconv.ParseFloat(lon, 64)
		if errLat != nil || errLon != nil {
			return s.weatherFallback(errBadCoordinates)
		}
		w, err := s.forecast(ctx, latV, lonV)
		if err != nil {
			return s.weatherFallback(err)
		}
		w.Location = &domain.Location{Latitude: latV, Longitude: lonV}
		return w
	}

	if site, ok := s.catalog.WeatherSite(q.Airport); ok {
		w, err := s.forecast(ctx, site.Lat, site.Lon)
		if err != nil {
			return s.weatherFallback(err)
		}
		w.Airport = site.Code
		w.Location = &domain.Location{Latitude: site.Lat, Longitude: site.Lon, Name: site.Name}
		return w
	}

	w := s.catalog.FallbackWeather()
	w.Success = true
	w.Source = SourceDummy
	return w
}

func (s *LiveService) forecast(ctx context.Context, lat, lon float64) (domain.Weather, error) {
	key := cache.WeatherKey(lat, lon)

	var f Forecast
	if s.cacheGet(ctx, key, &f) {
		metrics.CacheHits.WithLabelValues("open-meteo").Inc()
	} else {
		fetched, err := s.forecasts.Forecast(ctx, lat, lon)
		if err != nil {
			return domain.Weather{}, err
		}
		f = *fetched
		s.cacheSet(ctx, key, f)
	}

	return domain.Weather{
		Success: true,
		Current: f.Current,
		Hourly:  f.Hourly,
		Daily:   f.Daily,
		Source:  SourceOpenMeteo,
	}, nil
}

func (s *LiveService) weatherFallback(err error) domain.Weather {
	s.logger.Warn("weather unavailable, serving fallback", "error", err)
	metrics.UpstreamFallbacks.WithLabelValues("open-meteo").Inc()

	w := s.catalog.FallbackWeather()
	w.Success = false
	w.Error = weatherUnavailable
	w.Source = SourceFallback
	return w
}

func (s *LiveService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.logger.Debug("cache read failed", "key", key, "error", err)
		return false
	}
	return ok
}

func (s *LiveService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value); err != nil {
		s.logger.Debug("cache write failed", "key", key, "error", err)
	}
}

var _ LiveUseCase = (*LiveService)(nil)
