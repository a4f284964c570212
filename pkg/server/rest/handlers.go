package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"fms/cdu/pkg/datastructure"
	"fms/cdu/pkg/server"
	"fms/cdu/pkg/server/rest/service"
	"fms/cdu/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type CDUService interface {
	PlanRoute(ctx context.Context, startCode, endCode string) (service.RouteResult, error)
	PlanRouteCoordinates(ctx context.Context, start, end datastructure.GeoPoint) (service.RouteResult, error)
	Waypoint(ctx context.Context, code string) (datastructure.Waypoint, error)
	NearestWaypoints(ctx context.Context, lat, lon float64, k int) ([]datastructure.Waypoint, error)
	WaypointsInRadius(ctx context.Context, lat, lon, radiusKm float64) ([]datastructure.Waypoint, error)
	Ident(ctx context.Context) service.Ident
}

type CDUHandler struct {
	svc          CDUService
	promeMetrics *metrics
}

func CDURouter(r *chi.Mux, svc CDUService, m *metrics) {
	handler := &CDUHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/cdu", func(r chi.Router) {
			r.Post("/route", handler.planRoute)
			r.Post("/route/coordinates", handler.planRouteCoordinates)
			r.Get("/waypoints/nearest", handler.nearestWaypoints)
			r.Get("/waypoints/radius", handler.waypointsInRadius)
			r.Get("/waypoints/{code}", handler.waypoint)
			r.Get("/ident", handler.ident)
		})
	})
}

// validateRequest runs the validator with english messages, nil when data is valid.
func validateRequest(data interface{}) render.Renderer {
	validate := validator.New()
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return ErrValidation(err, translateError(err, trans))
}

// RouteRequest model info
//
//	@Description	request body for the RTE page: departure and destination ICAO codes
type RouteRequest struct {
	StartICAO string `json:"start_icao" validate:"required,alphanum,max=8"`
	EndICAO   string `json:"end_icao" validate:"required,alphanum,max=8,nefield=StartICAO"`
}

func (s *RouteRequest) Bind(r *http.Request) error {
	s.StartICAO = util.NormalizeCode(s.StartICAO)
	s.EndICAO = util.NormalizeCode(s.EndICAO)
	if s.StartICAO == "" || s.EndICAO == "" {
		return errors.New("invalid request")
	}
	return nil
}

// CoordinatesRouteRequest model info
//
//	@Description	request body for planning between two raw coordinates
type CoordinatesRouteRequest struct {
	SrcLat   *float64 `json:"src_lat" validate:"required,gte=-90,lte=90"`
	SrcLon   *float64 `json:"src_lon" validate:"required,gte=-180,lte=180"`
	SrcLabel string   `json:"src_label" validate:"max=16"`
	DstLat   *float64 `json:"dst_lat" validate:"required,gte=-90,lte=90"`
	DstLon   *float64 `json:"dst_lon" validate:"required,gte=-180,lte=180"`
	DstLabel string   `json:"dst_label" validate:"max=16"`
}

func (s *CoordinatesRouteRequest) Bind(r *http.Request) error {
	if s.SrcLabel == "" {
		s.SrcLabel = "DEP"
	}
	if s.DstLabel == "" {
		s.DstLabel = "ARR"
	}
	return nil
}

// PointRes model info
//
//	@Description	one point of the planned route
type PointRes struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// LegRes model info
//
//	@Description	one row of the LEGS page
type LegRes struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	Distance     float64 `json:"distance_km"`
	Course       float64 `json:"course"`
	Cumulative   float64 `json:"cumulative_km"`
	CrossTrackKm float64 `json:"xtk_km"`
}

// RouteResponse model info
//
//	@Description	planned route, LEGS page rows and the CDU screen text
type RouteResponse struct {
	Path           []PointRes `json:"path"`
	Legs           []LegRes   `json:"legs"`
	TotalDistance  float64    `json:"total_distance_km"`
	DirectDistance float64    `json:"direct_distance_km"`
	Polyline       string     `json:"polyline"`
	Display        string     `json:"display"`
}

func NewRouteResponse(res service.RouteResult) *RouteResponse {
	path := make([]PointRes, 0, len(res.Path))
	lines := []string{"Optimal Path:"}
	for _, p := range res.Path {
		path = append(path, PointRes{Label: p.Label, Lat: p.Lat, Lon: p.Lon})
		lines = append(lines, fmt.Sprintf("%s (%.4f, %.4f)", p.Label, p.Lat, p.Lon))
	}

	legs := make([]LegRes, 0, len(res.Legs))
	for i, l := range res.Legs {
		leg := LegRes{
			From:       l.From.Label,
			To:         l.To.Label,
			Distance:   util.RoundFloat(l.DistanceKm, 2),
			Course:     util.RoundFloat(l.Bearing, 1),
			Cumulative: util.RoundFloat(l.CumulativeKm, 2),
		}
		// xtk[i] belongs to path[i+1], the destination leg has none
		if i < len(res.CrossTrackKm) {
			leg.CrossTrackKm = util.RoundFloat(res.CrossTrackKm[i], 2)
		}
		legs = append(legs, leg)
	}

	return &RouteResponse{
		Path:           path,
		Legs:           legs,
		TotalDistance:  util.RoundFloat(res.TotalKm, 2),
		DirectDistance: util.RoundFloat(res.DirectKm, 2),
		Polyline:       res.Polyline,
		Display:        strings.Join(lines, "\n"),
	}
}

// planRoute
//
//	@Summary		RTE page. plan a route between two airports of the waypoint catalog.
//	@Description	resolves both ICAO codes, keeps the catalog waypoints inside the departure/destination lat-lon box and sequences them by great-circle distance.
//	@Tags			cdu
//	@Param			body	body	RouteRequest	true	"departure and destination ICAO codes"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/cdu/route [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *CDUHandler) planRoute(w http.ResponseWriter, r *http.Request) {
	data := &RouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := validateRequest(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	res, err := h.svc.PlanRoute(r.Context(), data.StartICAO, data.EndICAO)
	if err != nil {
		h.promeMetrics.RoutePlanCount.WithLabelValues("failure").Inc()
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RoutePlanCount.WithLabelValues("success").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteResponse(res))
}

// planRouteCoordinates
//
//	@Summary		plan a route between two raw coordinates.
//	@Description	same as the RTE page but departure and destination are given as lat/lon.
//	@Tags			cdu
//	@Param			body	body	CoordinatesRouteRequest	true	"departure and destination coordinates"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/cdu/route/coordinates [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *CDUHandler) planRouteCoordinates(w http.ResponseWriter, r *http.Request) {
	data := &CoordinatesRouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := validateRequest(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	start := datastructure.NewGeoPoint(*data.SrcLat, *data.SrcLon, data.SrcLabel)
	end := datastructure.NewGeoPoint(*data.DstLat, *data.DstLon, data.DstLabel)
	res, err := h.svc.PlanRouteCoordinates(r.Context(), start, end)
	if err != nil {
		h.promeMetrics.RoutePlanCount.WithLabelValues("failure").Inc()
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RoutePlanCount.WithLabelValues("success").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteResponse(res))
}

// waypoint
//
//	@Summary		lookup one waypoint by ICAO code.
//	@Tags			waypoints
//	@Param			code	path	string	true	"ICAO code"
//	@Produce		application/json
//	@Router			/cdu/waypoints/{code} [get]
//	@Success		200	{object}	datastructure.Waypoint
//	@Failure		404	{object}	ErrResponse
func (h *CDUHandler) waypoint(w http.ResponseWriter, r *http.Request) {
	wp, err := h.svc.Waypoint(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, wp)
}

// NearestRequest model info
//
//	@Description	query for the DIR INTC page
type NearestRequest struct {
	Lat *float64 `validate:"required,gte=-90,lte=90"`
	Lon *float64 `validate:"required,gte=-180,lte=180"`
	K   int      `validate:"gte=1,lte=50"`
}

// RadiusRequest model info
//
//	@Description	query for waypoints around a position
type RadiusRequest struct {
	Lat *float64 `validate:"required,gte=-90,lte=90"`
	Lon *float64 `validate:"required,gte=-180,lte=180"`
	Km  float64  `validate:"gt=0,lte=1000"`
}

// WaypointsResponse model info
//
//	@Description	list of catalog waypoints
type WaypointsResponse struct {
	Waypoints []datastructure.Waypoint `json:"waypoints"`
}

func queryFloat(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &v, nil
}

// nearestWaypoints
//
//	@Summary		DIR INTC page. k catalog waypoints closest to a position.
//	@Tags			waypoints
//	@Param			lat	query	number	true	"latitude"
//	@Param			lon	query	number	true	"longitude"
//	@Param			k	query	int		false	"number of waypoints, default 5"
//	@Produce		application/json
//	@Router			/cdu/waypoints/nearest [get]
//	@Success		200	{object}	WaypointsResponse
//	@Failure		400	{object}	ErrResponse
func (h *CDUHandler) nearestWaypoints(w http.ResponseWriter, r *http.Request) {
	data := NearestRequest{K: 5}
	var err error
	if data.Lat, err = queryFloat(r, "lat"); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if data.Lon, err = queryFloat(r, "lon"); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if raw := r.URL.Query().Get("k"); raw != "" {
		if data.K, err = strconv.Atoi(raw); err != nil {
			render.Render(w, r, ErrInvalidRequest(errors.New("k must be an integer")))
			return
		}
	}
	if errRend := validateRequest(data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	wps, err := h.svc.NearestWaypoints(r.Context(), *data.Lat, *data.Lon, data.K)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &WaypointsResponse{Waypoints: wps})
}

// waypointsInRadius
//
//	@Summary		waypoints within a great-circle radius, served from the imported catalog db.
//	@Tags			waypoints
//	@Param			lat	query	number	true	"latitude"
//	@Param			lon	query	number	true	"longitude"
//	@Param			km	query	number	true	"radius in km"
//	@Produce		application/json
//	@Router			/cdu/waypoints/radius [get]
//	@Success		200	{object}	WaypointsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *CDUHandler) waypointsInRadius(w http.ResponseWriter, r *http.Request) {
	data := RadiusRequest{}
	var err error
	if data.Lat, err = queryFloat(r, "lat"); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if data.Lon, err = queryFloat(r, "lon"); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	km, err := queryFloat(r, "km")
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if km != nil {
		data.Km = *km
	}
	if errRend := validateRequest(data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	wps, err := h.svc.WaypointsInRadius(r.Context(), *data.Lat, *data.Lon, data.Km)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &WaypointsResponse{Waypoints: wps})
}

// IdentResponse model info
//
//	@Description	IDENT page
type IdentResponse struct {
	Aircraft       string   `json:"aircraft"`
	EngineRating   string   `json:"eng_rating"`
	AIRACCycle     string   `json:"airac_cycle"`
	DatabaseValid  string   `json:"database_valid"`
	ProgramVersion string   `json:"program_version"`
	WaypointCount  int      `json:"waypoint_count"`
	DuplicateCodes []string `json:"duplicate_codes,omitempty"`
}

// ident
//
//	@Summary		IDENT page.
//	@Tags			cdu
//	@Produce		application/json
//	@Router			/cdu/ident [get]
//	@Success		200	{object}	IdentResponse
func (h *CDUHandler) ident(w http.ResponseWriter, r *http.Request) {
	id := h.svc.Ident(r.Context())
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &IdentResponse{
		Aircraft:       id.Aircraft,
		EngineRating:   id.EngineRating,
		AIRACCycle:     id.AIRACCycle,
		DatabaseValid:  id.DatabaseValid,
		ProgramVersion: id.ProgramVersion,
		WaypointCount:  id.WaypointCount,
		DuplicateCodes: id.DuplicateCodes,
	})
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	code := getStatusCode(err)
	switch code {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusUnprocessableEntity:
		statusText = "Unprocessable request."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	errText := err.Error()
	var ierr *server.Error
	if errors.As(err, &ierr) {
		errText = ierr.Message()
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     statusText,
		ErrorText:      errText,
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusRequestTimeout
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	case server.ErrUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
