package usecase

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"

	"github.com/vadimbarashkov/shorty/internal/entity"
	"golang.org/x/net/publicsuffix"
)

const recentDays = 7

// Chart builds the admin chart of the given kind.
func (uc *URLUseCase) Chart(ctx context.Context, kind string) (*entity.Chart, error) {
	const op = "usecase.URLUseCase.Chart"

	var (
		points []entity.ChartPoint
		err    error
	)

	switch kind {
	case entity.ChartHits:
		points, err = uc.hitsChart(ctx)
	case entity.ChartLocation:
		points, err = uc.locationChart(ctx)
	case entity.ChartDateHit:
		points, err = uc.dateChart(ctx)
	case entity.ChartDomain:
		points, err = uc.domainChart(ctx)
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, entity.ErrUnknownChart, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: failed to build %s chart: %w", op, kind, err)
	}

	return &entity.Chart{Kind: kind, Points: points}, nil
}

func (uc *URLUseCase) hitsChart(ctx context.Context) ([]entity.ChartPoint, error) {
	urls, err := uc.urlRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]entity.ChartPoint, 0, len(urls))
	for _, u := range urls {
		points = append(points, entity.ChartPoint{Label: u.ShortCode, Value: u.Hits})
	}

	return points, nil
}

func (uc *URLUseCase) locationChart(ctx context.Context) ([]entity.ChartPoint, error) {
	stats, err := uc.statsRepo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]entity.ChartPoint, 0, len(stats))
	for _, s := range stats {
		points = append(points, entity.ChartPoint{Label: s.City, Value: s.Hits})
	}

	return points, nil
}

func (uc *URLUseCase) dateChart(ctx context.Context) ([]entity.ChartPoint, error) {
	stats, err := uc.statsRepo.ListRecentDates(ctx, recentDays)
	if err != nil {
		return nil, err
	}

	points := make([]entity.ChartPoint, 0, len(stats))
	for _, s := range stats {
		points = append(points, entity.ChartPoint{Label: s.Key, Value: s.Hits})
	}

	return points, nil
}

// domainChart sums hits per registrable domain, so www.example.com and example.com share a point.
func (uc *URLUseCase) domainChart(ctx context.Context) ([]entity.ChartPoint, error) {
	urls, err := uc.urlRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	hits := make(map[string]int64)
	for _, u := range urls {
		hits[registrableDomain(u.LongURL)] += u.Hits
	}

	points := make([]entity.ChartPoint, 0, len(hits))
	for domain, n := range hits {
		points = append(points, entity.ChartPoint{Label: domain, Value: n})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Label < points[j].Label
	})

	return points, nil
}

func registrableDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}

	host := strings.ToLower(u.Hostname())
	if net.ParseIP(host) != nil {
		return host
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}

	return domain
}
