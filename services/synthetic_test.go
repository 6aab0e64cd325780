package services

import "testing"

func testGenerator() *SyntheticGenerator {
	return NewSyntheticGeneratorAt(fixedNow)
}

func TestHistoricalRecordCount(t *testing.T) {
	g := testGenerator()
	records := g.Historical("denia-ibiza", 30)
	if len(records) != 30 {
		t.Fatalf("len(records) = %d, want 30", len(records))
	}
}

func TestHistoricalDeterministicPerRouteAndDate(t *testing.T) {
	g := testGenerator()
	a := g.Historical("denia-ibiza", 14)
	b := g.Historical("denia-ibiza", 14)

	for i := range a {
		if a[i].Date != b[i].Date {
			t.Fatalf("record %d: dates differ: %s vs %s", i, a[i].Date, b[i].Date)
		}
		if a[i].Price != b[i].Price {
			t.Errorf("record %d: prices differ: %v vs %v", i, a[i].Price, b[i].Price)
		}
		if a[i].Occupancy != b[i].Occupancy {
			t.Errorf("record %d: occupancies differ: %v vs %v", i, a[i].Occupancy, b[i].Occupancy)
		}
	}
}

func TestHistoricalDifferentRoutesDiffer(t *testing.T) {
	g := testGenerator()
	a := g.Historical("denia-ibiza", 30)
	b := g.Historical("palma-barcelona", 30)

	same := 0
	for i := range a {
		if a[i].Price == b[i].Price {
			same++
		}
	}
	if same == len(a) {
		t.Error("two routes should not generate identical price series")
	}
}

func TestHistoricalInvariants(t *testing.T) {
	g := testGenerator()
	for _, r := range g.Historical("valencia-palma", 60) {
		if r.Occupancy < 0 || r.Occupancy > 1 {
			t.Errorf("%s: occupancy %v outside [0,1]", r.Date, r.Occupancy)
		}
		if r.Price <= 0 {
			t.Errorf("%s: price %v should be positive", r.Date, r.Price)
		}
		if r.Season == "" {
			t.Errorf("%s: season missing", r.Date)
		}
		if r.Route != "valencia-palma" {
			t.Errorf("%s: route = %q", r.Date, r.Route)
		}
	}
}

func TestBookingsDeterministic(t *testing.T) {
	g := testGenerator()
	a := g.Bookings("denia", "ibiza", 30)
	b := g.Bookings("denia", "ibiza", 30)

	if len(a) != 30 {
		t.Fatalf("len = %d, want 30", len(a))
	}
	for i := range a {
		if a[i].Fare != b[i].Fare || a[i].Passengers != b[i].Passengers {
			t.Errorf("row %d differs between runs", i)
		}
	}
}

func TestBookingsDefaultLimit(t *testing.T) {
	g := testGenerator()
	if got := len(g.Bookings("denia", "ibiza", 0)); got != 90 {
		t.Errorf("default limit = %d rows, want 90", got)
	}
	if got := len(g.Bookings("denia", "ibiza", 10000)); got != 90 {
		t.Errorf("oversized limit = %d rows, want 90", got)
	}
}

func TestRouteKnownGeometry(t *testing.T) {
	g := testGenerator()
	info := g.Route("denia", "ibiza")

	if info.BasePrice != 45 {
		t.Errorf("BasePrice = %v, want 45", info.BasePrice)
	}
	if info.Distance != 54 {
		t.Errorf("Distance = %v, want 54", info.Distance)
	}
	if info.Duration != 120 {
		t.Errorf("Duration = %v, want 120", info.Duration)
	}
	if !info.IsActive {
		t.Error("known route should be active")
	}
	for _, c := range info.CompetitorRoutes {
		if c == "denia-ibiza" {
			t.Error("competitor list should not contain the route itself")
		}
	}
}

func TestRouteUnknownGetsPlaceholder(t *testing.T) {
	g := testGenerator()
	info := g.Route("nowhere", "elsewhere")

	if info.BasePrice != 50 {
		t.Errorf("BasePrice = %v, want default 50", info.BasePrice)
	}
	if info.IsActive {
		t.Error("unknown route should be inactive")
	}
}
