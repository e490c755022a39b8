package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vadimbarashkov/shorty/internal/entity"
	"github.com/vadimbarashkov/shorty/internal/metrics"
)

// Resolve looks up shortCode and records the visit before returning the URL to redirect to.
// Analytics failures are logged and never returned.
func (uc *URLUseCase) Resolve(ctx context.Context, shortCode string, visitor entity.Visitor) (*entity.URL, error) {
	const op = "usecase.URLUseCase.Resolve"

	url, err := uc.urlRepo.RetrieveByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			uc.metrics.Redirect(metrics.ResultNotFound)
		}

		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	uc.record(context.WithoutCancel(ctx), url.ShortCode, visitor)
	uc.metrics.Redirect(metrics.ResultFound)

	return url, nil
}

// record applies the three independent analytics increments of a visit.
func (uc *URLUseCase) record(ctx context.Context, shortCode string, visitor entity.Visitor) {
	if err := uc.urlRepo.IncrementHits(ctx, shortCode); err != nil {
		uc.degraded(ctx, metrics.StatHits, err)
	}

	if err := uc.statsRepo.IncrementLocation(ctx, uc.city(ctx, visitor)); err != nil {
		uc.degraded(ctx, metrics.StatLocation, err)
	}

	now := uc.now()
	if err := uc.statsRepo.IncrementDate(ctx, dateKey(now), day(now)); err != nil {
		uc.degraded(ctx, metrics.StatDate, err)
	}
}

func (uc *URLUseCase) city(ctx context.Context, visitor entity.Visitor) string {
	if uc.locator == nil {
		return entity.UnknownCity
	}

	city, err := uc.locator.City(ctx, visitor.IP)
	if err != nil {
		uc.degraded(ctx, metrics.StatGeo, err)
		return entity.UnknownCity
	}

	if city == "" {
		return entity.UnknownCity
	}

	return city
}

func (uc *URLUseCase) degraded(ctx context.Context, stat string, err error) {
	uc.metrics.AnalyticsDegraded(stat)
	uc.logger.WarnContext(ctx, "analytics degraded",
		slog.String("stat", stat),
		slog.Any("err", err),
	)
}

// dateKey formats t as day/month/year without zero padding.
func dateKey(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
