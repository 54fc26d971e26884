// Package textfield models the single-line question box.
package textfield

import (
	"strings"
	"unicode"
)

// DefaultMaxLen keeps the line inside the surface with the debug font.
const DefaultMaxLen = 64

// Field is a single-line text control. Edits are ignored while disabled;
// programmatic SetValue and Clear are not.
type Field struct {
	value    []rune
	disabled bool
	maxLen   int
}

func New(maxLen int) *Field {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	return &Field{maxLen: maxLen}
}

func (f *Field) Value() string { return string(f.value) }

func (f *Field) SetValue(s string) {
	f.value = f.value[:0]
	f.append([]rune(s))
}

// Insert types rs at the end of the line. Control characters are dropped.
func (f *Field) Insert(rs []rune) {
	if f.disabled {
		return
	}
	f.append(rs)
}

func (f *Field) append(rs []rune) {
	for _, r := range rs {
		if len(f.value) >= f.maxLen {
			return
		}
		if unicode.IsControl(r) {
			continue
		}
		f.value = append(f.value, r)
	}
}

// Backspace removes the last rune.
func (f *Field) Backspace() {
	if f.disabled || len(f.value) == 0 {
		return
	}
	f.value = f.value[:len(f.value)-1]
}

func (f *Field) Clear() { f.value = f.value[:0] }

func (f *Field) Disabled() bool { return f.disabled }

func (f *Field) SetDisabled(v bool) { f.disabled = v }

// Blank reports whether the value is empty after trimming whitespace.
func (f *Field) Blank() bool {
	return strings.TrimSpace(string(f.value)) == ""
}
