// Package buffer implements the document model for tilde.
//
// A document is a doubly linked sequence of byte cells kept in an arena and
// addressed by stable indices (Ref). Two permanent sentinels bound the
// sequence: Head before the first cell and Tail after the last one. Line
// breaks are stored as Marker cells. The cursor always references a live cell
// and sits after it; a cursor on Head is the start of the document.
package buffer
