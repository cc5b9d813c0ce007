// Package input turns raw terminal bytes into per-frame key and mouse input.
package input

import (
	"bufio"
	"io"
	"strconv"
)

// maxSequenceLen bounds an unterminated escape sequence before it is dropped.
const maxSequenceLen = 32

// MouseAction is what a mouse report describes.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseDrag
	MouseRelease
)

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseDrag:
		return "drag"
	case MouseRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Mouse buttons as reported in SGR mode.
const (
	ButtonLeft   = 0
	ButtonMiddle = 1
	ButtonRight  = 2
	ButtonWheel  = 64 // Wheel up; wheel down is ButtonWheel+1
)

// MouseEvent is one SGR mouse report. Col and Row are 1-based terminal cells.
type MouseEvent struct {
	Action MouseAction
	Button int
	Col    int
	Row    int
}

// Input represents the current frame's input.
type Input struct {
	Quit      bool
	Space     bool
	Enter     bool
	Escape    bool
	FocusLost bool
	Closed    bool         // The underlying reader is done
	Mouse     []MouseEvent // In arrival order
	Pressed   []byte       // Every byte read this frame
}

// Stream delivers input bytes via a channel and keeps escape sequences that
// were split across reads until they complete.
type Stream struct {
	ch      chan byte
	pending []byte
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// parses them together with any sequence left over from the last frame.
func ReadInput(s *Stream) Input {
	var in Input
	fresh := 0

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.pending = append(s.pending, b)
			fresh++
		default:
			break drain
		}
	}

	buf := s.pending
	in.Pressed = buf[len(buf)-fresh:]
	rest := Parse(buf, &in)

	// A lone ESC with nothing after it for a whole frame is the Escape key.
	if fresh == 0 && len(rest) == 1 && rest[0] == '\x1b' {
		in.Escape = true
		rest = nil
	}
	s.pending = append([]byte(nil), rest...)
	in.Closed = s.closed
	return in
}

// ResetKeyInput drops everything buffered so far, so a key that started a
// new screen is not seen again by it.
func ResetKeyInput(s *Stream) {
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.closed = true
				s.pending = nil
				return
			}
		default:
			s.pending = nil
			return
		}
	}
}

// Parse applies every complete key and escape sequence in buf to in and
// returns the trailing bytes of an unfinished sequence.
func Parse(buf []byte, in *Input) (rest []byte) {
	for i := 0; i < len(buf); {
		if buf[i] != '\x1b' {
			applyKey(in, buf[i])
			i++
			continue
		}
		n, complete := parseEscape(buf[i:], in)
		if !complete {
			return buf[i:]
		}
		i += n
	}
	return nil
}

// parseEscape handles one sequence starting with ESC. It returns the number
// of bytes consumed, or complete=false if seq ends before the sequence does.
func parseEscape(seq []byte, in *Input) (n int, complete bool) {
	if len(seq) < 2 {
		return 0, false
	}
	if seq[1] != '[' {
		in.Escape = true
		return 1, true
	}
	if len(seq) < 3 {
		return 0, false
	}
	if seq[2] == '<' {
		return parseSGRMouse(seq, in)
	}

	// Any other CSI: parameters, then one final byte in 0x40..0x7e.
	for j := 2; j < len(seq); j++ {
		c := seq[j]
		if c >= 0x40 && c <= 0x7e {
			if c == 'O' {
				in.FocusLost = true
			}
			return j + 1, true
		}
		if j >= maxSequenceLen {
			return j, true
		}
	}
	return 0, false
}

// parseSGRMouse parses ESC [ < b ; col ; row (M|m).
func parseSGRMouse(seq []byte, in *Input) (n int, complete bool) {
	var fields [3]int
	field := 0
	start := 3
	for j := 3; j < len(seq); j++ {
		if j >= maxSequenceLen {
			return j, true
		}
		c := seq[j]
		switch {
		case c >= '0' && c <= '9':
			continue
		case c == ';' && field < 2:
			fields[field], _ = strconv.Atoi(string(seq[start:j]))
			field++
			start = j + 1
		case (c == 'M' || c == 'm') && field == 2:
			fields[2], _ = strconv.Atoi(string(seq[start:j]))
			in.Mouse = append(in.Mouse, decodeMouse(fields, c == 'm'))
			return j + 1, true
		default:
			// Malformed; drop what we have.
			return j, true
		}
	}
	return 0, false
}

func decodeMouse(fields [3]int, release bool) MouseEvent {
	code := fields[0]
	ev := MouseEvent{
		Button: code&3 | code&ButtonWheel,
		Col:    fields[1],
		Row:    fields[2],
	}
	switch {
	case release:
		ev.Action = MouseRelease
	case code&32 != 0:
		ev.Action = MouseDrag
	default:
		ev.Action = MousePress
	}
	return ev
}

func applyKey(in *Input, b byte) {
	switch b {
	case 'q', 'Q', 0x03: // 0x03 is Ctrl+C in raw mode
		in.Quit = true
	case ' ':
		in.Space = true
	case '\n', '\r':
		in.Enter = true
	}
}
