// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/reservoir/search"
)

// rangeFlag parses "min,max" into a search.Range.
type rangeFlag struct{ r *search.Range }

func (f rangeFlag) String() string {
	if f.r == nil {
		return ""
	}

	return fmt.Sprintf("%g,%g", f.r.Min, f.r.Max)
}

func (f rangeFlag) Set(s string) error {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want min,max, got %q", s)
	}
	minV, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return err
	}
	maxV, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return err
	}
	*f.r = search.Range{Min: minV, Max: maxV}

	return nil
}

// floatsFlag parses a comma separated list of floats.
type floatsFlag struct{ v *[]float64 }

func (f floatsFlag) String() string {
	if f.v == nil {
		return ""
	}
	parts := make([]string, len(*f.v))
	for i, b := range *f.v {
		parts[i] = strconv.FormatFloat(b, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

func (f floatsFlag) Set(s string) error {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*f.v = out

	return nil
}
