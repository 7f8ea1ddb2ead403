package handlers

import (
	"net/http"
	"warehouse-picker-service/internal/api/dto"
	"warehouse-picker-service/internal/ports"
	"warehouse-picker-service/internal/services"
)

type RouteHandler struct {
	Repo  ports.LocationRepository
	Cache ports.RouteCache
}

// Plan orders the requested pick list into a nearest-neighbor route.
// The first item in the request is the start of the route.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	plan, err := services.PlanPickRoute(r.Context(), services.PlanPickRequest{Items: req.Items}, h.Repo, h.Cache)
	if err != nil {
		writeDomainError(w, r, "plan pick route", err)
		return
	}

	res := dto.RouteResponse{
		Stops:         make([]dto.RouteStopResponse, 0, len(plan.Stops)),
		TotalDistance: plan.TotalDistance,
	}
	for i, s := range plan.Stops {
		res.Stops = append(res.Stops, dto.RouteStopResponse{
			Sequence: i + 1,
			Location: toLocationResponse(s),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Score returns the total distance of visiting the items in the given order.
func (h *RouteHandler) Score(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	total, err := services.ScorePickOrder(r.Context(), req.Items, h.Repo)
	if err != nil {
		writeDomainError(w, r, "score pick order", err)
		return
	}

	items := req.Items
	if items == nil {
		items = []string{}
	}
	writeJSON(w, r, http.StatusOK, dto.ScoreResponse{Items: items, TotalDistance: total})
}
