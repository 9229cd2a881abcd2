package dto

import (
	"encoding/json"
	"testing"
)

func rawAreas(t *testing.T, payloads ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, json.RawMessage(p))
	}
	return out
}

func TestNormalizeLocationAreas(t *testing.T) {
	areas := NormalizeLocationAreas(rawAreas(t,
		`{"google_place_id":"ChIJ123","name":"Mumbai","lat":19.07,"lng":72.87,"radius":25,"units":"km","country_code":"IN"}`,
		`{"place_id":"ChIJ456","text":"Delhi","latitude":28.61,"longitude":77.2}`,
		`{"address":"Pune","lat":18.52,"lon":73.85,"country":"IN"}`,
	))

	if len(areas) != 3 {
		t.Fatalf("got %d areas, want 3", len(areas))
	}

	first := areas[0]
	if first.GooglePlaceID == nil || *first.GooglePlaceID != "ChIJ123" {
		t.Errorf("place id = %v, want ChIJ123", first.GooglePlaceID)
	}
	if first.Name != "Mumbai" || first.Lat != 19.07 || first.Lng != 72.87 {
		t.Errorf("first = %+v", first)
	}
	if first.Radius == nil || *first.Radius != 25 {
		t.Errorf("radius = %v, want 25", first.Radius)
	}

	second := areas[1]
	if second.Name != "Delhi" || second.Lat != 28.61 || second.Lng != 77.2 {
		t.Errorf("alternate key spellings not picked up: %+v", second)
	}

	third := areas[2]
	if third.Name != "Pune" || third.CountryCode == nil || *third.CountryCode != "IN" {
		t.Errorf("third = %+v", third)
	}
}

func TestNormalizeLocationAreasSkipsUnusable(t *testing.T) {
	areas := NormalizeLocationAreas(rawAreas(t,
		`{"lat":1.0,"lng":2.0}`,
		`not json`,
		`{"name":"Kept"}`,
	))

	if len(areas) != 1 {
		t.Fatalf("got %d areas, want 1", len(areas))
	}
	if areas[0].Name != "Kept" {
		t.Errorf("kept = %+v", areas[0])
	}
}
