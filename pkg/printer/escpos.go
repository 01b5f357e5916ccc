package printer

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Alignment values for ESC a.
const (
	AlignLeft   byte = 0
	AlignCenter byte = 1
	AlignRight  byte = 2
)

// Character sizes for GS !.
const (
	SizeNormal byte = 0x00
	SizeDouble byte = 0x11
)

// Width58mm is the line width of 58mm paper in characters.
const Width58mm = 32

// Document accumulates an ESC/POS job.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts a job for paper that fits width characters per line.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = Width58mm
	}
	d := &Document{width: width}
	d.buf.Write([]byte{esc, '@'})
	return d
}

func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

func (d *Document) Align(a byte) *Document {
	d.buf.Write([]byte{esc, 'a', a})
	return d
}

func (d *Document) Bold(on bool) *Document {
	var b byte
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

func (d *Document) Size(s byte) *Document {
	d.buf.Write([]byte{gs, '!', s})
	return d
}

// Line writes s clipped to the paper width.
func (d *Document) Line(s string) *Document {
	d.buf.WriteString(clip(s, d.width))
	d.buf.WriteByte(lf)
	return d
}

// Rule draws a full-width line of ch.
func (d *Document) Rule(ch rune) *Document {
	return d.Line(strings.Repeat(string(ch), d.width))
}

// Pair writes left and right on one line, clipping left so right always fits.
func (d *Document) Pair(left, right string) *Document {
	room := d.width - utf8.RuneCountInString(right) - 1
	if room < 0 {
		room = 0
	}
	left = clip(left, room)
	pad := d.width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(left)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(right)
	d.buf.WriteByte(lf)
	return d
}

// Cut feeds and partially cuts the paper.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x01})
	return d
}

// Bytes returns the job so far.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
