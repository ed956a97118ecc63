package types

type FareLocation struct {
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

type FareEstimateRequest struct {
	Pickup        FareLocation   `json:"pickup" binding:"required"`
	Dropoff       FareLocation   `json:"dropoff" binding:"required"`
	Stops         []FareLocation `json:"stops,omitempty"`
	VehicleType   string         `json:"vehicleType" binding:"required"`
	ScheduledTime string         `json:"scheduledTime,omitempty"`
	Passengers    int            `json:"passengers,omitempty"`
}

type FareEstimateResponse struct {
	Fare            float64 `json:"fare"`
	Currency        string  `json:"currency"`
	DistanceKm      float64 `json:"distanceKm"`
	DurationMinutes int     `json:"durationMinutes"`
}
