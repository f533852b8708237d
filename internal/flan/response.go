package flan

import "time"

// ProtocolVersion is stamped on every envelope and packet.
const ProtocolVersion = "FLAN/1.0"

// Response is the envelope wrapping every API payload.
type Response struct {
	Protocol       string  `json:"protocol"`
	Status         Status  `json:"status"`
	Timestamp      float64 `json:"timestamp"` // unix seconds
	TimestampHuman string  `json:"timestamp_human"`
	Data           any     `json:"data,omitempty"`
	Message        string  `json:"message,omitempty"`
}

// NewResponse wraps data and an optional message in an envelope carrying the
// given outcome status.
func NewResponse(st Status, data any, message string) Response {
	now := time.Now()
	return Response{
		Protocol:       ProtocolVersion,
		Status:         st,
		Timestamp:      float64(now.UnixNano()) / 1e9,
		TimestampHuman: now.Format(time.RFC3339),
		Data:           data,
		Message:        message,
	}
}
