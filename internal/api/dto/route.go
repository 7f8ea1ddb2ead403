package dto

// Items are catalog names in the order the worker added them.
// The two-item minimum is a domain rule and is reported as 422, not here.
type RouteRequest struct {
	Items []string `json:"items" validate:"max=200,dive,required"`
}

type RouteStopResponse struct {
	Sequence int              `json:"sequence"`
	Location LocationResponse `json:"location"`
}

type RouteResponse struct {
	Stops         []RouteStopResponse `json:"stops"`
	TotalDistance float64             `json:"total_distance"`
}

type ScoreResponse struct {
	Items         []string `json:"items"`
	TotalDistance float64  `json:"total_distance"`
}
