package dto

type LocationResponse struct {
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Display string  `json:"display"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

type NearbyQuery struct {
	X *float64 `validate:"required"`
	Y *float64 `validate:"required"`
	K int      `validate:"min=1,max=50"`
}

// WithinQuery is a closed bounding box; the max corner must not be below the min corner.
type WithinQuery struct {
	MinX *float64 `validate:"required"`
	MinY *float64 `validate:"required"`
	MaxX *float64 `validate:"required"`
	MaxY *float64 `validate:"required"`
}
