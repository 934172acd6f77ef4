package editor

import "github.com/iw2rmb/tilde/buffer"

// Frame is the visible window onto the document.
//
// First is Head or the marker just before the first visible line. Last is
// the PageHeight-th marker after First, or Tail when fewer markers follow.
// YOffset counts the markers up to and including First.
type Frame struct {
	First   buffer.Ref
	Last    buffer.Ref
	XOffset int
	YOffset int
	Lines   int
}

// SlideFirstForward moves First to the next marker. It is a no-op when no
// marker follows.
func (f *Frame) SlideFirstForward(b *buffer.Buffer) {
	p := b.Next(f.First)
	for p != b.Tail() && !b.IsMarker(p) {
		p = b.Next(p)
	}
	if p != b.Tail() {
		f.First = p
	}
}

// SlideFirstBackward moves First to the previous marker, stopping at Head.
func (f *Frame) SlideFirstBackward(b *buffer.Buffer) {
	p := b.Prev(f.First)
	for p != b.Head() && !b.IsMarker(p) {
		p = b.Prev(p)
	}
	f.First = p
}

// SlideLastForward moves Last to the next marker, stopping at Tail.
func (f *Frame) SlideLastForward(b *buffer.Buffer) {
	if f.Last == b.Tail() {
		return
	}
	p := b.Next(f.Last)
	for p != b.Tail() && !b.IsMarker(p) {
		p = b.Next(p)
	}
	f.Last = p
}

// SlideLastBackward moves Last to the previous marker, stopping at Head.
func (f *Frame) SlideLastBackward(b *buffer.Buffer) {
	if f.Last == b.Head() {
		return
	}
	p := b.Prev(f.Last)
	for p != b.Head() && !b.IsMarker(p) {
		p = b.Prev(p)
	}
	f.Last = p
}

// frameAt builds a frame whose first visible line is yOffset.
func frameAt(b *buffer.Buffer, yOffset, page int) Frame {
	f := Frame{
		First:   b.Head(),
		Last:    b.Tail(),
		YOffset: yOffset,
		Lines:   b.LineCount(),
	}

	n := 0
	for p := b.Next(b.Head()); n < yOffset && p != b.Tail(); p = b.Next(p) {
		if b.IsMarker(p) {
			n++
			f.First = p
		}
	}

	n = 0
	for p := b.Next(f.First); p != b.Tail(); p = b.Next(p) {
		if b.IsMarker(p) {
			n++
			if n == page {
				f.Last = p
				break
			}
		}
	}
	return f
}
