package service

import (
	"context"
	"math"
	"time"

	"bakehouse/internal/models"
	"bakehouse/internal/repository"
)

// ----------- Simulation constants -----------
const (
	AmbientC      = 21.0 // kitchen ambient °C
	RampUpCPerSec = 4.0  // °C per second toward a preheat target
	DriftCPerSec  = 1.5  // °C per second unpowered drift
	ToleranceC    = 0.5  // °C band treated as "at goal"
)

// SimulatorService drifts oven temperatures over time: toward the
// target while an oven is reserved or busy, back toward ambient once
// idle. It never touches reservation state.
type SimulatorService struct {
	ovens repository.OvenPool
}

func NewSimulatorService(ovens repository.OvenPool) *SimulatorService {
	return &SimulatorService{ovens: ovens}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			elapsed := now.Sub(last).Seconds()
			last = now
			for _, oven := range s.ovens.List() {
				if next, changed := nextTemperature(oven, elapsed); changed {
					_ = s.ovens.SetTemperature(oven.ID, next)
				}
			}
		}
	}
}

// nextTemperature moves one oven a step toward its goal: the target
// while reserved or busy, ambient otherwise. Returns false when the
// oven is already within tolerance of the goal.
func nextTemperature(o models.Oven, elapsed float64) (float64, bool) {
	goal := AmbientC
	heating := false
	if (o.Status == models.OvenReserved || o.Status == models.OvenBusy) && o.TargetTempC > 0 {
		goal = o.TargetTempC
		heating = goal > o.TemperatureC
	}

	diff := goal - o.TemperatureC
	if math.Abs(diff) <= ToleranceC {
		return o.TemperatureC, false
	}

	rate := DriftCPerSec
	if heating {
		rate = RampUpCPerSec
	}
	if diff > 0 {
		return minFloat(o.TemperatureC+rate*elapsed, goal), true
	}
	return maxFloat(o.TemperatureC-rate*elapsed, goal), true
}

// helpers
func minFloat(a, b float64) float64 {
	if a <= b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a >= b {
		return a
	}
	return b
}
