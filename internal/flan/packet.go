package flan

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"
)

// Request types carried in the packet header.
const (
	RequestTypeRequest = "REQUEST"
	RequestTypeSyn     = "SYN"
	RequestTypeSynAck  = "SYN-ACK"
	RequestTypeData    = "DATA"
)

// Mold formats (encapsulation sizes).
const (
	MoldIndividual = "INDIVIDUAL"
	MoldFamily     = "FAMILY"
	MoldGiant      = "GIANT"
	MoldMini       = "MINI"
)

// PriorityNormal is the default topping priority.
const PriorityNormal = "NORMAL"

// Header frames a packet (the mold).
type Header struct {
	Version     string `json:"version"`
	RequestType string `json:"request_type"`
	SizeML      int    `json:"size_ml"`
	Mold        string `json:"mold"`
	RecipeID    string `json:"recipe_id"`
	Portion     string `json:"portion"`
	Temperature int    `json:"temperature"`
	TTLMinutes  int    `json:"ttl_minutes"`
	SourceOven  string `json:"source_oven"`
	DestPlate   string `json:"dest_plate"`
	Checksum    string `json:"checksum"`
}

// Body carries the payload (the custard).
type Body struct {
	Action      string         `json:"action"`
	Recipe      string         `json:"recipe"`
	Ingredients map[string]any `json:"ingredients"`
	Bake        map[string]any `json:"bake"`
	Data        any            `json:"data,omitempty"`
}

// Topping carries metadata options (the caramel).
type Topping struct {
	Priority    string         `json:"priority"`
	Compression bool           `json:"compression"`
	Extras      map[string]any `json:"extras"`
	Certificate string         `json:"certificate,omitempty"`
}

// Packet is a complete PDU (Pastry Data Unit).
type Packet struct {
	Header         Header  `json:"header"`
	Body           Body    `json:"body"`
	Topping        Topping `json:"topping"`
	Timestamp      float64 `json:"timestamp"` // unix seconds
	TimestampHuman string  `json:"timestamp_human"`
}

// NewHeader returns a header with protocol defaults filled in.
func NewHeader(requestType string) Header {
	return Header{
		Version:     "1.0",
		RequestType: requestType,
		Mold:        MoldIndividual,
		RecipeID:    "0x00",
		Portion:     "1/1",
		Temperature: 180,
		TTLMinutes:  30,
		SourceOven:  "127.0.0.1",
		DestPlate:   "127.0.0.1",
	}
}

// NewPacket seals a PDU: the body is serialized once to measure its size and
// fingerprint it into the header checksum.
func NewPacket(h Header, b Body, t Topping) (Packet, error) {
	if b.Ingredients == nil {
		b.Ingredients = map[string]any{}
	}
	if b.Bake == nil {
		b.Bake = map[string]any{}
	}
	if t.Priority == "" {
		t.Priority = PriorityNormal
	}
	if t.Extras == nil {
		t.Extras = map[string]any{}
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return Packet{}, fmt.Errorf("seal packet body: %w", err)
	}
	h.SizeML = len(raw)
	h.Checksum = textureChecksum(h.Version, h.RequestType, raw)

	now := time.Now()
	return Packet{
		Header:         h,
		Body:           b,
		Topping:        t,
		Timestamp:      float64(now.UnixNano()) / 1e9,
		TimestampHuman: now.Format(time.RFC3339),
	}, nil
}

// textureChecksum is the first 8 hex chars, uppercased, of the MD5 over
// version, request type and the sealed body. Integrity theater, not security.
func textureChecksum(version, requestType string, body []byte) string {
	sum := md5.Sum([]byte(version + requestType + string(body)))
	return fmt.Sprintf("%X", sum)[:8]
}
