// Package sink renders barrier layouts to SVG, PNG and plain text.
//
// Each renderer takes functional options; the zero configuration draws with
// [DefaultPalette]. Layouts are assumed valid (see layout.Layout.Validate);
// cells outside the layout's grid are ignored.
package sink
