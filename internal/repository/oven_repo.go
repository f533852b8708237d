package repository

import (
	"errors"
	"fmt"
	"sync"

	"bakehouse/internal/models"
)

// Pool errors.
var (
	ErrNoOvenAvailable = errors.New("no oven available")
	ErrUnknownOven     = errors.New("unknown oven")
	ErrOvenConflict    = errors.New("oven already bound to another order")
)

// defaultOvenCount matches a small teaching kitchen.
const defaultOvenCount = 3

// OvenMemory is the in-process oven pool. Every transition takes the pool
// lock, so reserve, bind and release are atomic relative to each other.
// An oven is busy exactly while it carries an order id.
type OvenMemory struct {
	mu    sync.Mutex
	ovens map[string]*models.Oven
	ids   []string // ascending creation order, stable scan order
}

// NewOvenMemory creates count idle ovens named oven_1..oven_<count>.
func NewOvenMemory(count int) *OvenMemory {
	if count <= 0 {
		count = defaultOvenCount
	}
	p := &OvenMemory{ovens: make(map[string]*models.Oven, count)}
	for i := 1; i <= count; i++ {
		id := fmt.Sprintf("oven_%d", i)
		p.ovens[id] = &models.Oven{ID: id, Status: models.OvenIdle}
		p.ids = append(p.ids, id)
	}
	return p
}

// ReserveAny flips the first idle oven to reserved and returns its id.
func (p *OvenMemory) ReserveAny() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range p.ids {
		if o := p.ovens[id]; o.Status == models.OvenIdle {
			o.Status = models.OvenReserved
			return id, nil
		}
	}
	return "", ErrNoOvenAvailable
}

// MarkBusy binds an idle or reserved oven exclusively to orderID. Binding
// the same order again is a no-op; any other busy oven is a conflict.
func (p *OvenMemory) MarkBusy(id, orderID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, ok := p.ovens[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOven, id)
	}
	if o.Status == models.OvenBusy {
		if o.OrderID == orderID {
			return nil
		}
		return fmt.Errorf("%w: %s holds %s", ErrOvenConflict, id, o.OrderID)
	}
	o.Status = models.OvenBusy
	o.OrderID = orderID
	return nil
}

// Release returns an oven to idle, clearing its binding and target
// temperature. Releasing an idle oven is a no-op.
func (p *OvenMemory) Release(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, ok := p.ovens[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOven, id)
	}
	o.Status = models.OvenIdle
	o.OrderID = ""
	o.TargetTempC = 0
	return nil
}

// Get returns a copy of one oven.
func (p *OvenMemory) Get(id string) (models.Oven, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, ok := p.ovens[id]
	if !ok {
		return models.Oven{}, false
	}
	return *o, true
}

// List returns point-in-time copies of every oven in id order.
func (p *OvenMemory) List() []models.Oven {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]models.Oven, 0, len(p.ids))
	for _, id := range p.ids {
		out = append(out, *p.ovens[id])
	}
	return out
}

// SetTarget points an oven at a target temperature (preheat or bake).
func (p *OvenMemory) SetTarget(id string, tempC float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, ok := p.ovens[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOven, id)
	}
	o.TargetTempC = tempC
	return nil
}

// SetTemperature overwrites the measured temperature. Used by the ambient
// temperature simulation; never touches the reservation state.
func (p *OvenMemory) SetTemperature(id string, tempC float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, ok := p.ovens[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOven, id)
	}
	o.TemperatureC = tempC
	return nil
}
