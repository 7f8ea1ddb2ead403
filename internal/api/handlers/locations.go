package handlers

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"warehouse-picker-service/internal/api/dto"
	"warehouse-picker-service/internal/domain"
	"warehouse-picker-service/internal/ports"
)

const defaultNearbyCount = 3

// LocationHandler exposes read-only catalog endpoints.
type LocationHandler struct {
	Repo   ports.LocationRepository
	Finder ports.LocationFinder
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	locs, err := h.Repo.ListLocations(r.Context())
	if err != nil {
		writeDomainError(w, r, "list locations", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListResponse(locs))
}

// Nearby returns the catalog locations closest to ?x=&y=, at most ?k= of them.
func (h *LocationHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	query := dto.NearbyQuery{K: defaultNearbyCount}
	if !parseCoords(w, r, q, map[string]**float64{"x": &query.X, "y": &query.Y}) {
		return
	}
	if raw := q.Get("k"); raw != "" {
		k, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "k must be an integer")
			return
		}
		query.K = k
	}
	if err := validate.Struct(query); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	locs, err := h.Finder.Nearest(*query.X, *query.Y, query.K)
	if err != nil {
		writeDomainError(w, r, "nearby locations", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListResponse(locs))
}

// Within returns the catalog locations inside ?min_x=&min_y=&max_x=&max_y=.
func (h *LocationHandler) Within(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var query dto.WithinQuery
	if !parseCoords(w, r, r.URL.Query(), map[string]**float64{
		"min_x": &query.MinX,
		"min_y": &query.MinY,
		"max_x": &query.MaxX,
		"max_y": &query.MaxY,
	}) {
		return
	}
	if err := validate.Struct(query); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if *query.MaxX < *query.MinX || *query.MaxY < *query.MinY {
		writeError(w, r, http.StatusBadRequest, "max_x and max_y must not be less than min_x and min_y")
		return
	}

	locs, err := h.Finder.Within(*query.MinX, *query.MinY, *query.MaxX, *query.MaxY)
	if err != nil {
		writeDomainError(w, r, "locations within", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListResponse(locs))
}

// parseCoords fills dst from the query string; absent keys stay nil.
// On failure the 400 response has already been written.
func parseCoords(w http.ResponseWriter, r *http.Request, q url.Values, dst map[string]**float64) bool {
	for key, p := range dst {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			writeError(w, r, http.StatusBadRequest, key+" must be a finite number")
			return false
		}
		*p = &v
	}
	return true
}

func toListResponse(locs []*domain.Location) dto.ListLocationsResponse {
	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(locs)),
	}
	for _, l := range locs {
		res.Locations = append(res.Locations, toLocationResponse(l))
	}
	return res
}
