package service

import (
	"context"
	"math"
	"testing"
	"time"

	"bakehouse/internal/models"
	"bakehouse/internal/repository"
)

func TestNextTemperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		oven    models.Oven
		elapsed float64
		want    float64
		changed bool
	}{
		{
			name:    "cold idle oven warms toward ambient",
			oven:    models.Oven{Status: models.OvenIdle, TemperatureC: 0},
			elapsed: 2,
			want:    DriftCPerSec * 2,
			changed: true,
		},
		{
			name:    "hot idle oven cools toward ambient",
			oven:    models.Oven{Status: models.OvenIdle, TemperatureC: 180},
			elapsed: 2,
			want:    180 - DriftCPerSec*2,
			changed: true,
		},
		{
			name:    "reserved oven ramps toward its target",
			oven:    models.Oven{Status: models.OvenReserved, TemperatureC: 21, TargetTempC: 180},
			elapsed: 1,
			want:    21 + RampUpCPerSec,
			changed: true,
		},
		{
			name:    "ramp clamps at the target",
			oven:    models.Oven{Status: models.OvenBusy, TemperatureC: 179, TargetTempC: 180},
			elapsed: 10,
			want:    180,
			changed: true,
		},
		{
			name:    "busy oven above target drifts down to it",
			oven:    models.Oven{Status: models.OvenBusy, TemperatureC: 200, TargetTempC: 180},
			elapsed: 2,
			want:    200 - DriftCPerSec*2,
			changed: true,
		},
		{
			name:    "within tolerance stays put",
			oven:    models.Oven{Status: models.OvenIdle, TemperatureC: AmbientC + 0.2},
			elapsed: 5,
			want:    AmbientC + 0.2,
			changed: false,
		},
		{
			name:    "reserved without a target drifts to ambient",
			oven:    models.Oven{Status: models.OvenReserved, TemperatureC: 50},
			elapsed: 2,
			want:    50 - DriftCPerSec*2,
			changed: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, changed := nextTemperature(tc.oven, tc.elapsed)
			if changed != tc.changed {
				t.Fatalf("changed = %v, want %v", changed, tc.changed)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("next = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRun_DriftsOvensUntilCanceled(t *testing.T) {
	t.Parallel()

	pool := repository.NewOvenMemory(1)
	if err := pool.SetTemperature("oven_1", 200); err != nil {
		t.Fatalf("seed temperature: %v", err)
	}

	svc := NewSimulatorService(pool)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	waitFor(t, time.Second, func() bool {
		o, _ := pool.Get("oven_1")
		return o.TemperatureC < 200
	})

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop on cancel")
	}
}
