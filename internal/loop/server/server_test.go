package server

import (
	"testing"
	"time"
)

func TestRegisterAndUnregister(t *testing.T) {
	s := NewServer(nil)
	a := s.RegisterClient("alice")
	b := s.RegisterClient("bob")

	if a.ID == b.ID {
		t.Fatal("client ids must be unique")
	}
	if got := s.GetSnapshot().Players; got != 2 {
		t.Fatalf("players = %d, want 2", got)
	}

	s.UnregisterClient(a.ID)
	if got := s.GetSnapshot().Players; got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
	if _, ok := <-a.EventsCh; ok {
		t.Error("events channel should be closed")
	}

	s.UnregisterClient(a.ID) // No-op
}

func TestUsernameIsTruncated(t *testing.T) {
	s := NewServer(nil)
	h := s.RegisterClient("a-very-long-username-indeed")
	if len(h.Username) != 16 {
		t.Errorf("username %q not truncated", h.Username)
	}
}

func TestTopScoresKeepBestPerClient(t *testing.T) {
	s := NewServer(nil)
	a := s.RegisterClient("alice")
	b := s.RegisterClient("bob")
	c := s.RegisterClient("carol")

	s.ReportScore(a.ID, 10)
	s.ReportScore(a.ID, 4)
	s.ReportScore(b.ID, 25)
	s.ReportScore(c.ID, 10)
	s.UnregisterClient(b.ID)

	top := s.GetSnapshot().TopScores
	want := []struct {
		user  string
		score int
	}{{"bob", 25}, {"alice", 10}, {"carol", 10}}
	if len(top) != len(want) {
		t.Fatalf("got %d entries, want %d", len(top), len(want))
	}
	for i, w := range want {
		if top[i].Username != w.user || top[i].Score != w.score {
			t.Errorf("entry %d = %s/%d, want %s/%d", i, top[i].Username, top[i].Score, w.user, w.score)
		}
	}
}

func TestZeroScoresAreNotListed(t *testing.T) {
	s := NewServer(nil)
	a := s.RegisterClient("alice")
	s.ReportScore(a.ID, 0)
	if n := len(s.GetSnapshot().TopScores); n != 0 {
		t.Errorf("expected empty leaderboard, got %d", n)
	}
}

func TestShutdownNotifiesAndWaits(t *testing.T) {
	s := NewServer(nil)
	h := s.RegisterClient("alice")

	go func() {
		ev := <-h.EventsCh
		if ev.Type == EventServerShutdown {
			s.UnregisterClient(h.ID)
		}
	}()

	start := time.Now()
	s.Shutdown(5 * time.Second)
	if time.Since(start) > 2*time.Second {
		t.Error("shutdown waited for the full timeout")
	}
	if s.GetSnapshot().Players != 0 {
		t.Error("client still registered")
	}
}
