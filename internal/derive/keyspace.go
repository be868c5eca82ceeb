// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package derive

import (
	"errors"
	"fmt"

	"github.com/pdiddy/evinputs/pkg/types"
)

// ErrEmptyKeySpace marks an input set with no regions or no years. This is
// a correctness guard on the inputs, not a recoverable condition.
var ErrEmptyKeySpace = errors.New("empty key space")

// KeySpace is the canonical row universe for the coefficient table: the
// full cross product of distinct regions, distinct years, and distinct
// technology triples, whether or not data exists for a combination.
// Invariant: Size() == |Regions| × |Years| × |Techs|.
type KeySpace struct {
	// Regions holds the distinct region names from the target table in
	// first-occurrence order.
	Regions []string

	// Years holds the distinct years from the target table in
	// first-occurrence order.
	Years []int

	// Techs holds the distinct (supplysector, tranSubsector, technology)
	// triples from the assumption table in first-occurrence order.
	Techs []types.TechTriple
}

// BuildKeySpace computes the distinct key sets from the two tables.
func BuildKeySpace(targets []types.TargetRecord, assumptions []types.AssumptionRecord) (KeySpace, error) {
	var ks KeySpace

	seenRegion := make(map[string]bool)
	seenYear := make(map[int]bool)
	for _, t := range targets {
		if !seenRegion[t.Region] {
			seenRegion[t.Region] = true
			ks.Regions = append(ks.Regions, t.Region)
		}
		if !seenYear[t.Year] {
			seenYear[t.Year] = true
			ks.Years = append(ks.Years, t.Year)
		}
	}

	seenTech := make(map[types.TechTriple]bool)
	for _, a := range assumptions {
		tt := types.TechTriple{Supplysector: a.Supplysector, TranSubsector: a.TranSubsector, Technology: a.Technology}
		if !seenTech[tt] {
			seenTech[tt] = true
			ks.Techs = append(ks.Techs, tt)
		}
	}

	if len(ks.Regions) == 0 {
		return KeySpace{}, fmt.Errorf("%w: no regions in target table", ErrEmptyKeySpace)
	}
	if len(ks.Years) == 0 {
		return KeySpace{}, fmt.Errorf("%w: no years in target table", ErrEmptyKeySpace)
	}
	return ks, nil
}

// Size returns the canonical row count.
func (ks KeySpace) Size() int {
	return len(ks.Regions) * len(ks.Years) * len(ks.Techs)
}
