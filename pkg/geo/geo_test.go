package geo

import (
	"math"
	"testing"
)

func TestMiles(t *testing.T) {
	vail := Point{Lat: 39.6433, Lon: -106.3781}
	breck := Point{Lat: 39.4817, Lon: -106.0384}

	tests := []struct {
		name    string
		a, b    Point
		want    float64
		epsilon float64
	}{
		{"same point", vail, vail, 0, 1e-9},
		{"vail to breckenridge", vail, breck, 21.3, 0.3},
		{"symmetric", breck, vail, 21.3, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Miles(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.epsilon {
				t.Errorf("Miles() = %v, want %v±%v", got, tt.want, tt.epsilon)
			}
		})
	}
}

func TestValid(t *testing.T) {
	if !(Point{Lat: 45, Lon: -120}).Valid() {
		t.Error("expected valid point")
	}
	if (Point{Lat: 91, Lon: 0}).Valid() {
		t.Error("latitude 91 should be invalid")
	}
	if (Point{Lat: 0, Lon: math.NaN()}).Valid() {
		t.Error("NaN should be invalid")
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(20.849); got != 20.8 {
		t.Errorf("Round1(20.849) = %v", got)
	}
	if got := Round1(20.87); got != 20.9 {
		t.Errorf("Round1(20.87) = %v", got)
	}
}
