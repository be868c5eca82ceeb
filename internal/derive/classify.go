// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package derive computes the canonical key space and the joined
// coefficient and resource-output rows from the loaded tables.
package derive

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat marks a supplysector whose prefix matches neither
// recognized transport category in a context where a category is required.
var ErrInvalidFormat = errors.New("invalid supplysector format")

// TransportCategory classifies a supplysector by its naming prefix.
type TransportCategory string

const (
	CategoryFreight      TransportCategory = "freight"
	CategoryPassenger    TransportCategory = "pass"
	CategoryUnrecognized TransportCategory = ""
)

// ClassifyTransport classifies a supplysector name by prefix. Unrecognized
// prefixes are returned as CategoryUnrecognized; each call site decides
// whether that is fatal (energy-input naming) or filtered (policy nodes).
func ClassifyTransport(supplysector string) TransportCategory {
	switch {
	case strings.HasPrefix(supplysector, "trn_freight"):
		return CategoryFreight
	case strings.HasPrefix(supplysector, "trn_pass"):
		return CategoryPassenger
	default:
		return CategoryUnrecognized
	}
}

// EnergyInputName derives the minicam-energy-input name for a supplysector
// and year, e.g. "EVTarget2030_freight". A supplysector outside the two
// recognized prefixes is an error here; there is no silent default.
func EnergyInputName(supplysector string, year int) (string, error) {
	cat := ClassifyTransport(supplysector)
	if cat == CategoryUnrecognized {
		return "", fmt.Errorf("%w: %q is neither trn_freight* nor trn_pass*", ErrInvalidFormat, supplysector)
	}
	return fmt.Sprintf("EVTarget%d_%s", year, cat), nil
}
