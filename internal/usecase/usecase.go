// Package usecase implements shortening, alias management, redirect resolution
// and analytics on top of the repository and adapter interfaces.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vadimbarashkov/shorty/internal/entity"
	"github.com/vadimbarashkov/shorty/internal/metrics"
	"github.com/vadimbarashkov/shorty/pkg/base62"
)

const (
	defaultShortCodeLength = 7
	defaultMaxSkips        = 16

	minAliasLength = 7
	maxAliasLength = 10
)

// reservedCodes are the top-level path segments the router serves itself.
// A short code equal to one of them could never be redirected.
var reservedCodes = map[string]struct{}{
	"api":     {},
	"docs":    {},
	"metrics": {},
	"swagger": {},
}

func isReserved(code string) bool {
	_, ok := reservedCodes[code]
	return ok
}

type urlRepository interface {
	Save(ctx context.Context, shortCode, longURL string, custom bool) (*entity.URL, error)
	RetrieveByShortCode(ctx context.Context, shortCode string) (*entity.URL, error)
	RetrieveByLongURL(ctx context.Context, longURL string) (*entity.URL, error)
	IncrementHits(ctx context.Context, shortCode string) error
	List(ctx context.Context) ([]*entity.URL, error)
}

type counterRepository interface {
	Next(ctx context.Context) (int64, error)
}

type aliasRepository interface {
	Bind(ctx context.Context, username, longURL, alias string) error
	Unbind(ctx context.Context, username, longURL, alias string) error
	ListByUser(ctx context.Context, username string) ([]entity.UserURL, error)
}

type statsRepository interface {
	IncrementLocation(ctx context.Context, city string) error
	IncrementDate(ctx context.Context, key string, day time.Time) error
	ListLocations(ctx context.Context) ([]entity.LocationStat, error)
	ListRecentDates(ctx context.Context, limit int) ([]entity.DateStat, error)
}

type urlProber interface {
	Probe(ctx context.Context, url string) error
}

type geoLocator interface {
	City(ctx context.Context, ip string) (string, error)
}

type Option func(*URLUseCase)

func WithShortCodeLength(n int) Option {
	return func(uc *URLUseCase) {
		if n > 0 {
			uc.shortCodeLength = n
		}
	}
}

// WithMaxSkips bounds how many consecutive counter values may be skipped
// because their codes are already held by custom URLs.
func WithMaxSkips(n int) Option {
	return func(uc *URLUseCase) {
		if n >= 0 {
			uc.maxSkips = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(uc *URLUseCase) {
		if logger != nil {
			uc.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *URLUseCase) {
		uc.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(uc *URLUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

type URLUseCase struct {
	shortCodeLength int
	maxSkips        int
	urlRepo         urlRepository
	counterRepo     counterRepository
	aliasRepo       aliasRepository
	statsRepo       statsRepository
	prober          urlProber
	locator         geoLocator
	metrics         *metrics.Metrics
	logger          *slog.Logger
	now             func() time.Time
}

func New(
	urlRepo urlRepository,
	counterRepo counterRepository,
	aliasRepo aliasRepository,
	statsRepo statsRepository,
	prober urlProber,
	locator geoLocator,
	opts ...Option,
) *URLUseCase {
	uc := &URLUseCase{
		shortCodeLength: defaultShortCodeLength,
		maxSkips:        defaultMaxSkips,
		urlRepo:         urlRepo,
		counterRepo:     counterRepo,
		aliasRepo:       aliasRepo,
		statsRepo:       statsRepo,
		prober:          prober,
		locator:         locator,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Shorten returns the canonical short code of longURL, minting one if the URL has never been shortened.
// created reports whether a new record was stored. A non-empty username gets the code bound to their account.
func (uc *URLUseCase) Shorten(ctx context.Context, longURL, username string) (url *entity.URL, created bool, err error) {
	const op = "usecase.URLUseCase.Shorten"

	url, err = uc.urlRepo.RetrieveByLongURL(ctx, longURL)
	switch {
	case err == nil:
		uc.metrics.URLShortened(metrics.KindDedup)
	case errors.Is(err, entity.ErrURLNotFound):
		if err := uc.prober.Probe(ctx, longURL); err != nil {
			return nil, false, fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidURL, err)
		}

		url, err = uc.mint(ctx, longURL)
		if errors.Is(err, entity.ErrLongURLExists) {
			url, err = uc.urlRepo.RetrieveByLongURL(ctx, longURL)
		} else if err == nil {
			created = true
		}

		if err != nil {
			return nil, false, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		if created {
			uc.metrics.URLShortened(metrics.KindAuto)
		} else {
			uc.metrics.URLShortened(metrics.KindDedup)
		}
	default:
		return nil, false, fmt.Errorf("%s: failed to look up url: %w", op, err)
	}

	if username != "" {
		if err := uc.aliasRepo.Bind(ctx, username, longURL, url.ShortCode); err != nil {
			return nil, false, fmt.Errorf("%s: failed to bind alias: %w", op, err)
		}
	}

	return url, created, nil
}

// mint allocates counter values until one encodes to a code that is not held by a custom URL.
func (uc *URLUseCase) mint(ctx context.Context, longURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.mint"

	for i := 0; i <= uc.maxSkips; i++ {
		value, err := uc.counterRepo.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to allocate counter value: %w", op, err)
		}

		shortCode := base62.EncodePadded(uint64(value), uc.shortCodeLength)
		if isReserved(shortCode) {
			uc.logger.InfoContext(ctx, "skipping reserved code",
				slog.String("op", op),
				slog.String("short_code", shortCode),
			)
			continue
		}

		url, err := uc.urlRepo.Save(ctx, shortCode, longURL, false)
		if err == nil {
			return url, nil
		}

		if !errors.Is(err, entity.ErrShortCodeExists) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		holder, lookupErr := uc.urlRepo.RetrieveByShortCode(ctx, shortCode)
		if lookupErr != nil {
			return nil, fmt.Errorf("%s: failed to look up code holder: %w", op, lookupErr)
		}

		if !holder.Custom {
			uc.metrics.DuplicateCode()
			uc.logger.ErrorContext(ctx, "counter produced a code that is already in use",
				slog.String("op", op),
				slog.Int64("counter_value", value),
				slog.String("short_code", shortCode),
			)

			return nil, fmt.Errorf("%s: counter value %d: %w", op, value, err)
		}

		uc.logger.InfoContext(ctx, "skipping code held by custom url",
			slog.String("op", op),
			slog.String("short_code", shortCode),
		)
	}

	return nil, fmt.Errorf("%s: %w", op, entity.ErrCounterExhausted)
}

// ShortenCustom stores longURL under the user-chosen code custom and binds it to username.
func (uc *URLUseCase) ShortenCustom(ctx context.Context, longURL, custom, username string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenCustom"

	if n := len(custom); n < minAliasLength || n > maxAliasLength {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidAliasLength)
	}

	if !base62.IsValid(custom) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidAlias)
	}

	if isReserved(custom) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrAliasTaken)
	}

	_, err := uc.urlRepo.RetrieveByShortCode(ctx, custom)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrAliasTaken)
	}
	if !errors.Is(err, entity.ErrURLNotFound) {
		return nil, fmt.Errorf("%s: failed to look up alias: %w", op, err)
	}

	if err := uc.prober.Probe(ctx, longURL); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidURL, err)
	}

	url, err := uc.urlRepo.Save(ctx, custom, longURL, true)
	if err != nil {
		if errors.Is(err, entity.ErrShortCodeExists) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrAliasTaken)
		}

		return nil, fmt.Errorf("%s: failed to save url: %w", op, err)
	}

	uc.metrics.URLShortened(metrics.KindCustom)

	if username != "" {
		if err := uc.aliasRepo.Bind(ctx, username, longURL, url.ShortCode); err != nil {
			return nil, fmt.Errorf("%s: failed to bind alias: %w", op, err)
		}
	}

	return url, nil
}

func (uc *URLUseCase) UnbindAlias(ctx context.Context, username, longURL, alias string) error {
	const op = "usecase.URLUseCase.UnbindAlias"

	if err := uc.aliasRepo.Unbind(ctx, username, longURL, alias); err != nil {
		return fmt.Errorf("%s: failed to unbind alias: %w", op, err)
	}

	return nil
}

func (uc *URLUseCase) ListUserURLs(ctx context.Context, username string) ([]entity.UserURL, error) {
	const op = "usecase.URLUseCase.ListUserURLs"

	urls, err := uc.aliasRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list user urls: %w", op, err)
	}

	return urls, nil
}
