package input

import (
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	var in Input
	rest := Parse([]byte("x q\r"), &in)
	if len(rest) != 0 {
		t.Fatalf("unexpected rest %q", rest)
	}
	if !in.Quit || !in.Space || !in.Enter {
		t.Errorf("got %+v", in)
	}
}

func TestParseSGRMouse(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want MouseEvent
	}{
		{"left press", "\x1b[<0;10;5M", MouseEvent{MousePress, ButtonLeft, 10, 5}},
		{"left drag", "\x1b[<32;11;5M", MouseEvent{MouseDrag, ButtonLeft, 11, 5}},
		{"left release", "\x1b[<0;12;6m", MouseEvent{MouseRelease, ButtonLeft, 12, 6}},
		{"right press", "\x1b[<2;1;1M", MouseEvent{MousePress, ButtonRight, 1, 1}},
		{"wheel", "\x1b[<65;300;40M", MouseEvent{MousePress, ButtonWheel + 1, 300, 40}},
		{"ctrl left", "\x1b[<16;3;4M", MouseEvent{MousePress, ButtonLeft, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			Parse([]byte(tt.seq), &in)
			if len(in.Mouse) != 1 {
				t.Fatalf("got %d events", len(in.Mouse))
			}
			if in.Mouse[0] != tt.want {
				t.Errorf("got %+v, want %+v", in.Mouse[0], tt.want)
			}
		})
	}
}

func TestParseKeepsSplitSequence(t *testing.T) {
	var in Input
	rest := Parse([]byte("\x1b[<32;10;"), &in)
	if string(rest) != "\x1b[<32;10;" {
		t.Fatalf("rest %q", rest)
	}
	if len(in.Mouse) != 0 {
		t.Fatal("incomplete sequence produced an event")
	}

	rest = Parse(append(rest, []byte("7Mq")...), &in)
	if len(rest) != 0 || len(in.Mouse) != 1 || !in.Quit {
		t.Errorf("rest %q, input %+v", rest, in)
	}
	if in.Mouse[0].Row != 7 {
		t.Errorf("row %d, want 7", in.Mouse[0].Row)
	}
}

func TestParseFocusAndArrows(t *testing.T) {
	var in Input
	rest := Parse([]byte("\x1b[A\x1b[O\x1b[I"), &in)
	if len(rest) != 0 {
		t.Fatalf("rest %q", rest)
	}
	if !in.FocusLost {
		t.Error("focus out not reported")
	}
	if in.Quit || in.Escape || len(in.Mouse) != 0 {
		t.Errorf("arrows should be ignored, got %+v", in)
	}
}

func TestParseDropsMalformedMouse(t *testing.T) {
	var in Input
	rest := Parse([]byte("\x1b[<0;x;1M "), &in)
	if len(rest) != 0 || len(in.Mouse) != 0 {
		t.Errorf("rest %q, mouse %v", rest, in.Mouse)
	}
}

func TestParseDropsRunawaySequence(t *testing.T) {
	var in Input
	seq := "\x1b[<" + strings.Repeat("1", 40)
	if rest := Parse([]byte(seq), &in); len(rest) >= len(seq) {
		t.Errorf("runaway sequence kept whole: %d bytes", len(rest))
	}
}

// readUntil polls the stream until cond holds or a second passes.
func readUntil(t *testing.T, s *Stream, cond func(Input) bool) Input {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		if cond(in) {
			return in
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met")
	return Input{}
}

func TestStreamReportsClose(t *testing.T) {
	s := StartStream(strings.NewReader("\x1b[<0;2;3M"))
	in := readUntil(t, s, func(in Input) bool { return len(in.Mouse) > 0 })
	if in.Mouse[0].Col != 2 {
		t.Errorf("got %+v", in.Mouse[0])
	}
	readUntil(t, s, func(in Input) bool { return in.Closed })
}

func TestLoneEscapeIsFlushed(t *testing.T) {
	s := StartStream(strings.NewReader("\x1b"))
	readUntil(t, s, func(in Input) bool { return in.Escape })
}
