package service

import (
	"context"
	"errors"
	"log/slog"

	"fms/cdu/pkg/catalog"
	"fms/cdu/pkg/datastructure"
	"fms/cdu/pkg/engine/routeplanner"
	"fms/cdu/pkg/server"
	"fms/cdu/pkg/util"
)

type WaypointCatalog interface {
	FindByCode(code string) (datastructure.Waypoint, error)
	Waypoints() []datastructure.Waypoint
	Nearest(lat, lon float64, k int) []datastructure.Waypoint
	Len() int
	Duplicates() []string
}

type RoutePlanner interface {
	Plan(wps routeplanner.WaypointSource, start, end datastructure.GeoPoint) ([]datastructure.GeoPoint, error)
	Legs(path []datastructure.GeoPoint) []datastructure.Leg
}

type KVDB interface {
	WaypointsInRadius(lat, lon, radiusKm float64) ([]datastructure.Waypoint, error)
}

type RouteResult struct {
	Path         []datastructure.GeoPoint
	Legs         []datastructure.Leg
	TotalKm      float64
	DirectKm     float64
	CrossTrackKm []float64
	Polyline     string
}

// Ident static IDENT page plus catalog facts.
type Ident struct {
	Aircraft       string
	EngineRating   string
	AIRACCycle     string
	DatabaseValid  string
	ProgramVersion string
	WaypointCount  int
	DuplicateCodes []string
}

type CDUService struct {
	catalog WaypointCatalog
	planner RoutePlanner
	kv      KVDB
	log     *slog.Logger
}

// NewCDUService kv may be nil when no pebble catalog store is configured.
func NewCDUService(c WaypointCatalog, planner RoutePlanner, kv KVDB, log *slog.Logger) *CDUService {
	return &CDUService{catalog: c, planner: planner, kv: kv, log: log}
}

func (uc *CDUService) resolve(code string) (datastructure.Waypoint, error) {
	wp, err := uc.catalog.FindByCode(code)
	if errors.Is(err, catalog.ErrNotFound) {
		return wp, server.WrapErrorf(err, server.ErrNotFound, "invalid ICAO code %s", code)
	}
	if err != nil {
		return wp, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return wp, nil
}

// PlanRoute RTE page: resolve both ICAO codes and plan between them.
func (uc *CDUService) PlanRoute(ctx context.Context, startCode, endCode string) (RouteResult, error) {
	startCode, endCode = util.NormalizeCode(startCode), util.NormalizeCode(endCode)
	if startCode == endCode {
		return RouteResult{}, server.WrapErrorf(nil, server.ErrBadParamInput, "departure and destination are both %s", startCode)
	}

	startWp, err := uc.resolve(startCode)
	if err != nil {
		return RouteResult{}, err
	}
	endWp, err := uc.resolve(endCode)
	if err != nil {
		return RouteResult{}, err
	}

	return uc.PlanRouteCoordinates(ctx, startWp.GeoPoint(), endWp.GeoPoint())
}

func (uc *CDUService) PlanRouteCoordinates(ctx context.Context, start, end datastructure.GeoPoint) (RouteResult, error) {
	if err := ctx.Err(); err != nil {
		return RouteResult{}, err
	}

	path, err := uc.planner.Plan(uc.catalog, start, end)
	if errors.Is(err, routeplanner.ErrNoPathFound) {
		return RouteResult{}, server.WrapErrorf(err, server.ErrUnprocessable, "no route between %s and %s", start.Label, end.Label)
	}
	if err != nil {
		return RouteResult{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}

	res := RouteResult{
		Path:         path,
		Legs:         uc.planner.Legs(path),
		TotalKm:      routeplanner.TotalDistance(path),
		DirectKm:     routeplanner.GreatCircleDistance(start, end),
		CrossTrackKm: routeplanner.CrossTrack(path),
		Polyline:     datastructure.RenderPath(path),
	}
	uc.log.Debug("route planned",
		slog.String("from", start.Label),
		slog.String("to", end.Label),
		slog.Int("points", len(path)),
		slog.Float64("total_km", res.TotalKm))
	return res, nil
}

func (uc *CDUService) Waypoint(ctx context.Context, code string) (datastructure.Waypoint, error) {
	return uc.resolve(util.NormalizeCode(code))
}

// NearestWaypoints DIR INTC candidates.
func (uc *CDUService) NearestWaypoints(ctx context.Context, lat, lon float64, k int) ([]datastructure.Waypoint, error) {
	return uc.catalog.Nearest(lat, lon, k), nil
}

func (uc *CDUService) WaypointsInRadius(ctx context.Context, lat, lon, radiusKm float64) ([]datastructure.Waypoint, error) {
	if uc.kv == nil {
		return nil, server.WrapErrorf(nil, server.ErrUnprocessable, "radius search needs an imported catalog db")
	}
	wps, err := uc.kv.WaypointsInRadius(lat, lon, radiusKm)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return wps, nil
}

func (uc *CDUService) Ident(ctx context.Context) Ident {
	return Ident{
		Aircraft:       "Boeing 737-800 WL",
		EngineRating:   "26K",
		AIRACCycle:     "1809",
		DatabaseValid:  "16 Aug - 12 Sep 2018",
		ProgramVersion: "U10.8A",
		WaypointCount:  uc.catalog.Len(),
		DuplicateCodes: uc.catalog.Duplicates(),
	}
}
