// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package derive

import (
	"errors"
	"testing"
)

func TestClassifyTransport(t *testing.T) {
	tests := []struct {
		supplysector string
		want         TransportCategory
	}{
		{"trn_freight_road", CategoryFreight},
		{"trn_freight", CategoryFreight},
		{"trn_pass_road", CategoryPassenger},
		{"trn_pass_road_LDV_4W", CategoryPassenger},
		{"trn_shipping_intl", CategoryUnrecognized},
		{"electricity", CategoryUnrecognized},
		{"", CategoryUnrecognized},
	}
	for _, tt := range tests {
		if got := ClassifyTransport(tt.supplysector); got != tt.want {
			t.Errorf("ClassifyTransport(%q) = %q, want %q", tt.supplysector, got, tt.want)
		}
	}
}

func TestEnergyInputName(t *testing.T) {
	got, err := EnergyInputName("trn_freight_x", 2030)
	if err != nil {
		t.Fatalf("EnergyInputName: %v", err)
	}
	if got != "EVTarget2030_freight" {
		t.Errorf("got %q, want %q", got, "EVTarget2030_freight")
	}

	got, err = EnergyInputName("trn_pass_y", 2040)
	if err != nil {
		t.Fatalf("EnergyInputName: %v", err)
	}
	if got != "EVTarget2040_pass" {
		t.Errorf("got %q, want %q", got, "EVTarget2040_pass")
	}
}

func TestEnergyInputNameUnrecognized(t *testing.T) {
	_, err := EnergyInputName("other", 2030)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}
