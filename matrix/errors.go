/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package matrix

import (
	"fmt"
	"strings"
)

// EntryError attributes a failure to a text style and, where known, the entry,
// group or option that caused it.
type EntryError struct {
	Style  string
	Entry  string
	Group  string
	Option string
	Err    error
}

func (e *EntryError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "text style %q", e.Style)
	if e.Entry != "" && e.Entry != e.Style {
		fmt.Fprintf(&sb, " entry %q", e.Entry)
	}
	if e.Group != "" {
		fmt.Fprintf(&sb, " group %s", e.Group)
	}
	if e.Option != "" {
		fmt.Fprintf(&sb, " option %q", e.Option)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
