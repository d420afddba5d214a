package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/geo"
	"github.com/ja-he/lunadash/internal/model"
)

// Error is a failed request's status code and message.
type Error struct {
	Code    int
	Message string
}

// HandlerFunc handles a request, returning either a result to be sent as
// JSON or an error.
type HandlerFunc func(ctx *gin.Context) (any, *Error)

func resolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, err := h(ctx)
		if err != nil {
			ctx.JSON(err.Code, gin.H{"error": err.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

type locationRequest struct {
	Query string `json:"query"`
}

type locationResponse struct {
	PlaceName   string            `json:"placeName"`
	Coordinates model.Coordinates `json:"coordinates"`
	View        control.View      `json:"view"`
}

type phasesResponse struct {
	Start  time.Time              `json:"start"`
	Phases []model.UpcomingPhase  `json:"phases"`
	Items  []control.UpcomingItem `json:"items"`
}

type timeFormatResponse struct {
	TimeFormat string        `json:"timeFormat"`
	Toggle     string        `json:"toggle"`
	Timing     []control.Row `json:"timing"`
}

func (s *Server) snapshot(ctx *gin.Context) (any, *Error) {
	return s.view(ctx)
}

func (s *Server) phases(ctx *gin.Context) (any, *Error) {
	start := s.dashboard.Now()
	if raw := ctx.Query("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid start '%s', expected RFC3339", raw)}
		}
		start = parsed
	}
	upcoming := s.dashboard.Calculator().UpcomingPhases(start)
	return phasesResponse{
		Start:  start,
		Phases: upcoming,
		Items:  control.UpcomingItems(upcoming),
	}, nil
}

func (s *Server) picture(ctx *gin.Context) (any, *Error) {
	p := s.dashboard.Picture()
	if p == nil {
		return nil, &Error{Code: http.StatusBadGateway, Message: "picture of the day unavailable"}
	}
	return p, nil
}

func (s *Server) location(ctx *gin.Context) (any, *Error) {
	var req locationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &Error{Code: http.StatusBadRequest, Message: "invalid request body"}
	}

	snapshot, err := s.dashboard.SetLocation(ctx.Request.Context(), req.Query)
	switch {
	case errors.Is(err, control.ErrEmptyQuery):
		return nil, &Error{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, geo.ErrNoResults):
		return nil, &Error{Code: http.StatusNotFound, Message: fmt.Sprintf("no location found for '%s'", strings.TrimSpace(req.Query))}
	case err != nil:
		_ = ctx.Error(err)
		return nil, &Error{Code: http.StatusBadGateway, Message: "location lookup failed"}
	}

	view, _ := s.dashboard.View(s.dashboard.Now())
	return locationResponse{
		PlaceName:   snapshot.PlaceName,
		Coordinates: snapshot.Observation.Coordinates,
		View:        view,
	}, nil
}

func (s *Server) timeFormat(ctx *gin.Context) (any, *Error) {
	timing := s.dashboard.ToggleTimeFormat()
	format := s.dashboard.Settings().TimeFormat
	return timeFormatResponse{
		TimeFormat: format.String(),
		Toggle:     format.ToggleLabel(),
		Timing:     timing,
	}, nil
}

// view renders the dashboard for the request. With lat and lon query
// parameters it is computed for those coordinates without changing the
// dashboard's location; the format parameter overrides the time format.
func (s *Server) view(ctx *gin.Context) (control.View, *Error) {
	now := s.dashboard.Now()
	settings := s.dashboard.Settings()
	if raw := ctx.Query("format"); raw != "" {
		format, err := model.ParseTimeFormat(raw)
		if err != nil {
			return control.View{}, &Error{Code: http.StatusBadRequest, Message: err.Error()}
		}
		settings.TimeFormat = format
	}

	coords, given, qerr := queryCoordinates(ctx)
	if qerr != nil {
		return control.View{}, qerr
	}
	if !given {
		snapshot := s.dashboard.Snapshot()
		if snapshot == nil {
			return control.View{}, &Error{Code: http.StatusServiceUnavailable, Message: "dashboard not ready"}
		}
		return control.BuildView(snapshot, s.dashboard.Picture(), settings, now), nil
	}

	snapshot, err := s.dashboard.Compute(ctx.Request.Context(), coords)
	if err != nil {
		return control.View{}, &Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	return control.BuildView(snapshot, s.dashboard.Picture(), settings, now), nil
}

func queryCoordinates(ctx *gin.Context) (model.Coordinates, bool, *Error) {
	rawLat, rawLon := ctx.Query("lat"), ctx.Query("lon")
	if rawLat == "" && rawLon == "" {
		return model.Coordinates{}, false, nil
	}
	if rawLat == "" || rawLon == "" {
		return model.Coordinates{}, false, &Error{Code: http.StatusBadRequest, Message: "both lat and lon are required"}
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return model.Coordinates{}, false, &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid lat '%s'", rawLat)}
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return model.Coordinates{}, false, &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid lon '%s'", rawLon)}
	}
	coords := model.Coordinates{Latitude: lat, Longitude: lon}
	if !coords.Valid() {
		return model.Coordinates{}, false, &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("coordinates %s out of range", coords)}
	}
	return coords, true, nil
}
