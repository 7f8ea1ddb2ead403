package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"warehouse-picker-service/internal/domain"
	"warehouse-picker-service/internal/platform/metrics"
	"warehouse-picker-service/internal/platform/obs"
	"warehouse-picker-service/internal/ports"

	"github.com/cespare/xxhash/v2"
)

type PlanPickRequest struct {
	// Item names in the order the worker added them.
	Items []string
}

// PlanPickRoute resolves the requested items against the catalog, builds a
// pick list and orders it with FindShortestRoute.
//
// The catalog is loaded once per request so every name maps to a single
// entity. cache may be nil; cache failures are logged and never fail the
// request.
func PlanPickRoute(
	ctx context.Context,
	req PlanPickRequest,
	repo ports.LocationRepository,
	cache ports.RouteCache,
) (_ *domain.PickRoute, err error) {
	defer obs.Time(ctx, "plan.pick_route")(&err)
	defer func() { recordOutcome(err) }()

	catalog, err := loadCatalog(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("plan pick route: %w", err)
	}

	picks := domain.NewPickList()
	for _, name := range req.Items {
		loc, err := catalog.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("plan pick route: %w", err)
		}
		if err := picks.Add(loc); err != nil {
			return nil, fmt.Errorf("plan pick route: %w", err)
		}
	}

	if err := picks.Ready(); err != nil {
		return nil, fmt.Errorf("plan pick route: %w", err)
	}

	items := picks.Items()
	key := routeCacheKey(items)

	if cache != nil {
		if plan, ok := cachedPlan(ctx, cache, catalog, key, len(items)); ok {
			observePlan(plan)
			return plan, nil
		}
	}

	route := FindShortestRoute(items)
	plan := &domain.PickRoute{
		Stops:         route,
		TotalDistance: CalculateTotalDistance(route),
	}

	if cache != nil {
		cr := ports.CachedRoute{Names: plan.Names(), TotalDistance: plan.TotalDistance}
		if err := cache.Put(ctx, key, cr); err != nil {
			log.Printf("req_id=%s op=plan.pick_route cache put failed: %v", obs.RequestID(ctx), err)
		}
	}

	observePlan(plan)
	return plan, nil
}

func observePlan(plan *domain.PickRoute) {
	metrics.RouteDistance.Observe(plan.TotalDistance)
	metrics.RouteStops.Observe(float64(len(plan.Stops)))
}

// ScorePickOrder returns the total distance of visiting items in exactly the
// given order. Any length is accepted and repeated names are allowed.
func ScorePickOrder(ctx context.Context, items []string, repo ports.LocationRepository) (_ float64, err error) {
	defer obs.Time(ctx, "plan.score_order")(&err)

	catalog, err := loadCatalog(ctx, repo)
	if err != nil {
		return 0, fmt.Errorf("score pick order: %w", err)
	}

	route := make([]*domain.Location, 0, len(items))
	for _, name := range items {
		loc, err := catalog.Lookup(name)
		if err != nil {
			return 0, fmt.Errorf("score pick order: %w", err)
		}
		route = append(route, loc)
	}

	return CalculateTotalDistance(route), nil
}

func loadCatalog(ctx context.Context, repo ports.LocationRepository) (*domain.Catalog, error) {
	if repo == nil {
		return nil, errors.New("load catalog: repository must be non-nil")
	}

	locs, err := repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: list locations: %w", err)
	}

	catalog, err := domain.NewCatalog(locs)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

// cachedPlan rebuilds a plan from a cache entry using catalog entities.
// Entries that no longer match the catalog are treated as misses.
func cachedPlan(
	ctx context.Context,
	cache ports.RouteCache,
	catalog *domain.Catalog,
	key string,
	want int,
) (*domain.PickRoute, bool) {
	cr, ok, err := cache.Get(ctx, key)
	if err != nil {
		metrics.RouteCacheLookups.WithLabelValues("error").Inc()
		log.Printf("req_id=%s op=plan.pick_route cache get failed: %v", obs.RequestID(ctx), err)
		return nil, false
	}
	if !ok || len(cr.Names) != want {
		metrics.RouteCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	stops := make([]*domain.Location, 0, len(cr.Names))
	for _, name := range cr.Names {
		loc, err := catalog.Lookup(name)
		if err != nil {
			metrics.RouteCacheLookups.WithLabelValues("miss").Inc()
			return nil, false
		}
		stops = append(stops, loc)
	}

	metrics.RouteCacheLookups.WithLabelValues("hit").Inc()
	return &domain.PickRoute{Stops: stops, TotalDistance: cr.TotalDistance}, true
}

// routeCacheKey digests the ordered name/coordinate triples, so a moved
// location never serves a stale route.
func routeCacheKey(items []*domain.Location) string {
	h := xxhash.New()
	for _, loc := range items {
		_, _ = h.WriteString(loc.Name)
		_, _ = h.WriteString("\x1f")
		_, _ = h.WriteString(strconv.FormatFloat(loc.X, 'g', -1, 64))
		_, _ = h.WriteString("\x1f")
		_, _ = h.WriteString(strconv.FormatFloat(loc.Y, 'g', -1, 64))
		_, _ = h.WriteString("\x1e")
	}
	return "pick-route:" + strconv.FormatUint(h.Sum64(), 16)
}

func recordOutcome(err error) {
	switch {
	case err == nil:
		metrics.RoutesPlanned.WithLabelValues("ok").Inc()
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrDuplicateItem),
		errors.Is(err, domain.ErrTooFewItems):
		metrics.RoutesPlanned.WithLabelValues("rejected").Inc()
	default:
		metrics.RoutesPlanned.WithLabelValues("error").Inc()
	}
}
