package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fms/cdu/pkg/catalog"
	"fms/cdu/pkg/datastructure"
	"fms/cdu/pkg/server"
	"fms/cdu/pkg/server/rest"
	"fms/cdu/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCDU struct {
	lastStart, lastEnd string
	lastK              int
	lastKm             float64
	routeErr           error
}

func (f *fakeCDU) PlanRoute(ctx context.Context, startCode, endCode string) (service.RouteResult, error) {
	f.lastStart, f.lastEnd = startCode, endCode
	if f.routeErr != nil {
		return service.RouteResult{}, f.routeErr
	}
	return f.result(datastructure.NewGeoPoint(0, 0, startCode), datastructure.NewGeoPoint(30, 30, endCode)), nil
}

func (f *fakeCDU) PlanRouteCoordinates(ctx context.Context, start, end datastructure.GeoPoint) (service.RouteResult, error) {
	f.lastStart, f.lastEnd = start.Label, end.Label
	if f.routeErr != nil {
		return service.RouteResult{}, f.routeErr
	}
	return f.result(start, end), nil
}

func (f *fakeCDU) result(start, end datastructure.GeoPoint) service.RouteResult {
	mid := datastructure.NewGeoPoint(10, 10, "A")
	return service.RouteResult{
		Path: []datastructure.GeoPoint{start, mid, end},
		Legs: []datastructure.Leg{
			{From: start, To: mid, DistanceKm: 1568.5211, Bearing: 44.56, CumulativeKm: 1568.5211},
			{From: mid, To: end, DistanceKm: 3036.1, Bearing: 42.1, CumulativeKm: 4604.6211},
		},
		TotalKm:      4604.6211,
		DirectKm:     4604.6,
		CrossTrackKm: []float64{0.004},
		Polyline:     "abc",
	}
}

func (f *fakeCDU) Waypoint(ctx context.Context, code string) (datastructure.Waypoint, error) {
	if code == "WIII" {
		return datastructure.Waypoint{ICAOCode: "WIII", Lat: -6.1256, Lon: 106.6559}, nil
	}
	return datastructure.Waypoint{}, server.WrapErrorf(catalog.ErrNotFound, server.ErrNotFound, "invalid ICAO code %s", code)
}

func (f *fakeCDU) NearestWaypoints(ctx context.Context, lat, lon float64, k int) ([]datastructure.Waypoint, error) {
	f.lastK = k
	return []datastructure.Waypoint{{ICAOCode: "WARJ", Lat: -7.78, Lon: 110.43}}, nil
}

func (f *fakeCDU) WaypointsInRadius(ctx context.Context, lat, lon, radiusKm float64) ([]datastructure.Waypoint, error) {
	f.lastKm = radiusKm
	return nil, server.WrapErrorf(nil, server.ErrUnprocessable, "radius search needs an imported catalog db")
}

func (f *fakeCDU) Ident(ctx context.Context) service.Ident {
	return service.Ident{Aircraft: "Boeing 737-800 WL", AIRACCycle: "1809", WaypointCount: 3}
}

func newTestRouter(svc rest.CDUService) *chi.Mux {
	r := chi.NewRouter()
	rest.CDURouter(r, svc, rest.NewMetrics(prometheus.NewRegistry()))
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPlanRouteHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCDU{}
		rec := do(newTestRouter(svc), http.MethodPost, "/api/cdu/route", `{"start_icao":" wiii","end_icao":"WARJ"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "WIII", svc.lastStart)
		assert.Equal(t, "WARJ", svc.lastEnd)

		var res rest.RouteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Path, 3)
		assert.Equal(t, "A", res.Path[1].Label)
		require.Len(t, res.Legs, 2)
		assert.Equal(t, 1568.52, res.Legs[0].Distance)
		assert.Equal(t, 44.6, res.Legs[0].Course)
		assert.Equal(t, 0.0, res.Legs[1].CrossTrackKm)
		assert.Equal(t, 4604.62, res.TotalDistance)
		assert.Equal(t, "abc", res.Polyline)
		assert.True(t, strings.HasPrefix(res.Display, "Optimal Path:\nWIII (0.0000, 0.0000)\nA (10.0000, 10.0000)"))
	})

	t.Run("validation errors", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"missing end", `{"start_icao":"WIII"}`},
			{"same codes", `{"start_icao":"WIII","end_icao":"wiii"}`},
			{"non alphanumeric", `{"start_icao":"WI-II","end_icao":"WARJ"}`},
			{"malformed json", `{"start_icao":`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := do(newTestRouter(&fakeCDU{}), http.MethodPost, "/api/cdu/route", tc.body)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})

	t.Run("service errors map to status codes", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{server.WrapErrorf(catalog.ErrNotFound, server.ErrNotFound, "invalid ICAO code ZZZZ"), http.StatusNotFound},
			{server.WrapErrorf(nil, server.ErrUnprocessable, "no route"), http.StatusUnprocessableEntity},
			{server.WrapErrorf(nil, server.ErrInternalServerError, "internal server error"), http.StatusInternalServerError},
			{context.Canceled, http.StatusRequestTimeout},
		}
		for _, tc := range cases {
			rec := do(newTestRouter(&fakeCDU{routeErr: tc.err}), http.MethodPost, "/api/cdu/route", `{"start_icao":"WIII","end_icao":"ZZZZ"}`)
			assert.Equal(t, tc.want, rec.Code, tc.err.Error())
		}
	})

	t.Run("not found message hides the cause", func(t *testing.T) {
		svc := &fakeCDU{routeErr: server.WrapErrorf(catalog.ErrNotFound, server.ErrNotFound, "invalid ICAO code ZZZZ")}
		rec := do(newTestRouter(svc), http.MethodPost, "/api/cdu/route", `{"start_icao":"WIII","end_icao":"ZZZZ"}`)

		var res rest.ErrResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "invalid ICAO code ZZZZ", res.ErrorText)
		assert.Equal(t, "Resource not found.", res.StatusText)
	})
}

func TestPlanRouteCoordinatesHandler(t *testing.T) {
	t.Run("default labels", func(t *testing.T) {
		svc := &fakeCDU{}
		rec := do(newTestRouter(svc), http.MethodPost, "/api/cdu/route/coordinates",
			`{"src_lat":0,"src_lon":0,"dst_lat":30,"dst_lon":30}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "DEP", svc.lastStart)
		assert.Equal(t, "ARR", svc.lastEnd)
	})

	t.Run("out of range latitude", func(t *testing.T) {
		rec := do(newTestRouter(&fakeCDU{}), http.MethodPost, "/api/cdu/route/coordinates",
			`{"src_lat":91,"src_lon":0,"dst_lat":30,"dst_lon":30}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing longitude", func(t *testing.T) {
		rec := do(newTestRouter(&fakeCDU{}), http.MethodPost, "/api/cdu/route/coordinates",
			`{"src_lat":1,"dst_lat":30,"dst_lon":30}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWaypointHandler(t *testing.T) {
	r := newTestRouter(&fakeCDU{})

	rec := do(r, http.MethodGet, "/api/cdu/waypoints/WIII", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var wp datastructure.Waypoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wp))
	assert.Equal(t, "WIII", wp.ICAOCode)

	rec = do(r, http.MethodGet, "/api/cdu/waypoints/ZZZZ", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNearestWaypointsHandler(t *testing.T) {
	t.Run("default k", func(t *testing.T) {
		svc := &fakeCDU{}
		rec := do(newTestRouter(svc), http.MethodGet, "/api/cdu/waypoints/nearest?lat=-7.8&lon=110.4", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, svc.lastK)

		var res rest.WaypointsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Waypoints, 1)
		assert.Equal(t, "WARJ", res.Waypoints[0].ICAOCode)
	})

	t.Run("bad queries", func(t *testing.T) {
		for _, q := range []string{
			"lat=-7.8",
			"lat=abc&lon=110",
			"lat=-7.8&lon=110&k=0",
			"lat=-7.8&lon=110&k=x",
			"lat=-7.8&lon=181",
		} {
			rec := do(newTestRouter(&fakeCDU{}), http.MethodGet, "/api/cdu/waypoints/nearest?"+q, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		}
	})
}

func TestWaypointsInRadiusHandler(t *testing.T) {
	svc := &fakeCDU{}
	rec := do(newTestRouter(svc), http.MethodGet, "/api/cdu/waypoints/radius?lat=-7.8&lon=110.4&km=150", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 150.0, svc.lastKm)

	rec = do(newTestRouter(&fakeCDU{}), http.MethodGet, "/api/cdu/waypoints/radius?lat=-7.8&lon=110.4", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIdentHandler(t *testing.T) {
	rec := do(newTestRouter(&fakeCDU{}), http.MethodGet, "/api/cdu/ident", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res rest.IdentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Boeing 737-800 WL", res.Aircraft)
	assert.Equal(t, 3, res.WaypointCount)
}
