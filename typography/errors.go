/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography

import (
	"errors"
	"fmt"
)

// Sentinel errors for typography generation and consumption.
var (
	// ErrMissingFamily indicates a text role references a family with no definition.
	ErrMissingFamily = errors.New("missing font family definition")

	// ErrStyleRuleDecode indicates a FontStyle payload could not be decoded by a consumer.
	ErrStyleRuleDecode = errors.New("failed to decode font style rule")

	// ErrUnresolvedTextStyle indicates a query left a text style without a required property.
	ErrUnresolvedTextStyle = errors.New("unresolved text style")

	// ErrUnknownRule indicates a rule object with no recognized variant.
	ErrUnknownRule = errors.New("rule has no recognized variant")

	// ErrInvalidExport indicates an export whose assignments reference missing properties.
	ErrInvalidExport = errors.New("invalid typography export")
)

// MissingFamilyError reports a text role whose FamilyBaseName has no Families entry.
type MissingFamilyError struct {
	// Family is the referenced family base name.
	Family string
	// Role is the text role token value (e.g., "ui").
	Role string
}

func (e *MissingFamilyError) Error() string {
	return fmt.Sprintf("family %q used for text role %q does not have an entry in Families", e.Family, "role:"+e.Role)
}

func (e *MissingFamilyError) Unwrap() error {
	return ErrMissingFamily
}

// StyleRuleDecodeError reports a FontStyle payload a consumer could not understand.
type StyleRuleDecodeError struct {
	// Consumer names the sub-key being decoded, e.g. "Figma".
	Consumer string
	// Context describes where the payload came from, e.g. an entry name.
	Context string
	// Err is the underlying decode failure.
	Err error
}

func (e *StyleRuleDecodeError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("failed to decode %s font style rule: %v", e.Consumer, e.Err)
	}
	return fmt.Sprintf("failed to decode %s font style rule for %s: %v", e.Consumer, e.Context, e.Err)
}

// Unwrap returns both the sentinel and the cause.
func (e *StyleRuleDecodeError) Unwrap() []error {
	return []error{ErrStyleRuleDecode, e.Err}
}
