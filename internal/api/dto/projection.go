package dto

// Both endpoints answer with the full pair so clients can correlate input and output.
type ProjectionResponse struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
