package audio

import (
	"io"
	"time"
)

// Bell rings the terminal bell for selected cues. It is the only sound an
// SSH client can hear.
type Bell struct {
	w     io.Writer
	rings [soundCount]bool
}

// NewBell creates a Bell that writes BEL to w when one of sounds plays.
func NewBell(w io.Writer, sounds ...Sound) *Bell {
	b := &Bell{w: w}
	for _, s := range sounds {
		if s >= 0 && s < soundCount {
			b.rings[s] = true
		}
	}
	return b
}

// Play rings the bell if s is one of the bell's cues.
func (b *Bell) Play(s Sound) time.Duration {
	if s >= 0 && s < soundCount && b.rings[s] {
		io.WriteString(b.w, "\a")
	}
	return ClipLength(s)
}

// Loop never rings; a repeating bell would be unbearable.
func (b *Bell) Loop(Sound) Handle {
	return nopHandle{}
}

var _ Player = (*Bell)(nil)
