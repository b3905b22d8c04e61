// Package model provides the in-memory representation of a source document's
// content stream.
//
// A loaded document is an ordered slice of [Block] values. Order is the only
// addressing scheme: blocks carry no stable identifiers, and every consumer
// walks them front to back.
//
// # Blocks
//
// The concrete block types are:
//
//   - [Paragraph] - raw text, ordered style runs, and an embedded-graphic flag
//   - [Table] - a grid of [Cell] values, each holding its own paragraphs
//
// # Runs
//
// A [Run] is a span of text with uniform formatting. Only the properties the
// formatter copies are modeled: bold, italic, size (in half-points) and font
// name. A zero size or empty font name means "inherit from style".
package model
