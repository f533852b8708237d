package models

// OvenStatus is the reservation state of a single oven.
type OvenStatus string

const (
	OvenIdle     OvenStatus = "idle"
	OvenReserved OvenStatus = "reserved"
	OvenBusy     OvenStatus = "busy"
)

// Oven is one exclusive baking slot in the kitchen pool.
// Status is OvenBusy exactly when OrderID is non-empty.
type Oven struct {
	ID           string     `json:"id"`
	Status       OvenStatus `json:"status"`
	OrderID      string     `json:"order_id,omitempty"`
	TemperatureC float64    `json:"temperature_c"`           // °C
	TargetTempC  float64    `json:"target_temp_c,omitempty"` // °C
}
