/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography

import (
	"encoding/json"
	"fmt"
	"math"
)

// Equation computes a cap height in pixels from a relative scale step.
type Equation struct {
	Multiplier *MultiplierEquation `json:"Multiplier,omitempty"`
}

// MultiplierEquation is a geometric scale: base_px * multiplier^rel.
type MultiplierEquation struct {
	BasePx     float64 `json:"base_px"`
	Multiplier float64 `json:"multiplier"`
}

// CapHeightPx returns the (optionally aligned) cap height for rel.
func (e Equation) CapHeightPx(rel float64, alignTo *float64) (float64, error) {
	switch {
	case e.Multiplier != nil:
		return Align(e.Multiplier.BasePx*math.Pow(e.Multiplier.Multiplier, rel), alignTo), nil
	default:
		return 0, fmt.Errorf("font size equation: %w", ErrUnknownRule)
	}
}

// TrackingRule computes letter spacing from a font size.
type TrackingRule struct {
	DynMetrics *DynMetrics `json:"DynMetrics,omitempty"`
}

// DynMetrics is the dynamic tracking curve a + b * e^(c * size), in em.
type DynMetrics struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// TrackingPx returns letter spacing in pixels for fontSizePx.
func (r TrackingRule) TrackingPx(fontSizePx float64) (float64, error) {
	switch {
	case r.DynMetrics != nil:
		m := r.DynMetrics
		return fontSizePx * (m.A + m.B*math.Exp(m.C*fontSizePx)), nil
	default:
		return 0, fmt.Errorf("tracking rule: %w", ErrUnknownRule)
	}
}

// LineHeightRule computes a line height from a font size.
type LineHeightRule struct {
	FontSizePxMultiplier *FontSizePxMultiplier `json:"FontSizePxMultipler,omitempty"`
}

// FontSizePxMultiplier sets line height to a multiple of the font size.
type FontSizePxMultiplier struct {
	Multiplier float64 `json:"multiplier"`
}

// UnmarshalJSON also accepts the correctly spelled "FontSizePxMultiplier" key.
func (r *LineHeightRule) UnmarshalJSON(data []byte) error {
	var raw struct {
		Misspelled *FontSizePxMultiplier `json:"FontSizePxMultipler"`
		Spelled    *FontSizePxMultiplier `json:"FontSizePxMultiplier"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.FontSizePxMultiplier = raw.Misspelled
	if r.FontSizePxMultiplier == nil {
		r.FontSizePxMultiplier = raw.Spelled
	}
	return nil
}

// LineHeightPx returns the (optionally aligned) line height for fontSizePx.
func (r LineHeightRule) LineHeightPx(fontSizePx float64, alignTo *float64) (float64, error) {
	switch {
	case r.FontSizePxMultiplier != nil:
		return Align(fontSizePx*r.FontSizePxMultiplier.Multiplier, alignTo), nil
	default:
		return 0, fmt.Errorf("line height rule: %w", ErrUnknownRule)
	}
}

// Align rounds v to the nearest multiple of *to. A nil or non-positive step leaves v unchanged.
func Align(v float64, to *float64) float64 {
	if to == nil || *to <= 0 {
		return v
	}
	return math.Round(v / *to) * *to
}
