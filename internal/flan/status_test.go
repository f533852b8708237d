package flan

import "testing"

func TestAll_CodesAscendingAndComplete(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) != 17 {
		t.Fatalf("want 17 statuses, got %d", len(all))
	}

	prev := 0
	for _, st := range all {
		if st.Code <= prev {
			t.Fatalf("codes not strictly ascending at %d (%s)", st.Code, st.Name)
		}
		prev = st.Code
		if st.Name == "" || st.Description == "" {
			t.Errorf("status %d missing name or description", st.Code)
		}
	}
}

func TestStatus_WellKnownCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		st   Status
		code int
	}{
		{"flan perfect", StatusFlanPerfect, 200},
		{"flan created", StatusFlanCreated, 201},
		{"oven occupied", StatusOvenOccupied, 302},
		{"flan not found", StatusFlanNotFound, 404},
		{"teapot", StatusTeapot, 418},
		{"too many orders", StatusTooManyOrders, 429},
		{"kitchen closed", StatusKitchenClosed, 503},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.st.Code != tc.code {
				t.Fatalf("want code %d, got %d", tc.code, tc.st.Code)
			}
		})
	}
}
