package tools

import (
	"context"
	"errors"
	"math"
	"testing"

	"snowboarding-assistant/internal/model"
	"snowboarding-assistant/internal/resort"
	"snowboarding-assistant/internal/resort/usecase"
)

type failingFinder struct{}

func (failingFinder) Nearest(ctx context.Context, in resort.NearestInput) (resort.NearestOutput, error) {
	return resort.NearestOutput{}, resort.ErrInvalidCoordinates
}

func TestResortDistances_NoLocation(t *testing.T) {
	tool := NewResortDistances(failingFinder{}, 0, &mockLogger{})
	res := tool.Lookup(context.Background(), nil, "")
	if !res.Unavailable || res.Err != nil || len(res.Resorts) != 0 {
		t.Errorf("expected unavailable sentinel, got %+v", res)
	}
}

func TestResortDistances_VailIsNearest(t *testing.T) {
	uc := usecase.New(nil, &mockLogger{})
	tool := NewResortDistances(uc, 5, &mockLogger{})

	res := tool.Lookup(context.Background(), &model.Location{Lat: 39.64, Lon: -106.38, Address: "Vail, Colorado"}, "")
	if res.Unavailable || res.Err != nil {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Address != "Vail, Colorado" {
		t.Errorf("address not carried: %q", res.Address)
	}
	if len(res.Resorts) == 0 || res.Resorts[0].Resort.Name != "Vail" {
		t.Fatalf("expected Vail first, got %+v", res.Resorts)
	}
	if math.Abs(res.Resorts[0].Miles) > 1 {
		t.Errorf("expected Vail at about 0 miles, got %.2f", res.Resorts[0].Miles)
	}
}

func TestResortDistances_LookupError(t *testing.T) {
	tool := NewResortDistances(failingFinder{}, 5, &mockLogger{})
	res := tool.Lookup(context.Background(), &model.Location{Lat: 1, Lon: 2}, "")
	if res.Unavailable || !errors.Is(res.Err, resort.ErrInvalidCoordinates) {
		t.Errorf("expected error with address kept, got %+v", res)
	}
	if res.Address == "" {
		t.Error("address should fall back to coordinates")
	}
}
