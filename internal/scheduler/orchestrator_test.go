package scheduler_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/courtside/internal/api/websocket"
	"github.com/fortuna/courtside/internal/leaderboard"
	"github.com/fortuna/courtside/internal/publisher"
	"github.com/fortuna/courtside/internal/scheduler"
	"github.com/fortuna/courtside/internal/service"
)

type fakeBoards struct {
	snaps       []service.Snapshot
	err         error
	calls       int
	invalidated []string
}

func (f *fakeBoards) Season() string { return "2025-26" }

func (f *fakeBoards) Snapshot(ctx context.Context) (service.Snapshot, error) {
	if f.err != nil {
		return service.Snapshot{}, f.err
	}
	i := f.calls
	if i >= len(f.snaps) {
		i = len(f.snaps) - 1
	}
	f.calls++
	return f.snaps[i], nil
}

func (f *fakeBoards) Compute(ctx context.Context, snap service.Snapshot, q leaderboard.Query) (leaderboard.Result, error) {
	return leaderboard.Compute(snap.League, q), nil
}

func (f *fakeBoards) Invalidate(ctx context.Context, fingerprint string) (int, error) {
	f.invalidated = append(f.invalidated, fingerprint)
	return 3, nil
}

type recorder struct {
	events  []publisher.LeaderboardUpdated
	updates []websocket.LeaderboardUpdate
}

func (r *recorder) PublishLeaderboardUpdated(ctx context.Context, e publisher.LeaderboardUpdated) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) BroadcastLeaderboard(u websocket.LeaderboardUpdate) {
	r.updates = append(r.updates, u)
}

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func snapshot(fp string) service.Snapshot {
	return service.Snapshot{
		Fingerprint: fp,
		League: leaderboard.League{
			Teams: []leaderboard.Team{{ID: "T", Name: "Team", Roster: []leaderboard.RosterPlayer{
				{ID: "p", Name: "P", Stats: leaderboard.PlayerStats{G: 1, Pts: 10}},
			}}},
			Schedule: []leaderboard.ScheduledGame{{ID: "g", HomeTeamID: "T", AwayTeamID: "U", Played: true}},
		},
	}
}

func TestRefresh_FansOutOnlyOnChange(t *testing.T) {
	boards := &fakeBoards{snaps: []service.Snapshot{snapshot("aaa"), snapshot("aaa"), snapshot("bbb")}}
	rec := &recorder{}
	o := scheduler.NewOrchestrator(boards, rec, rec, nil, quietLogger())
	ctx := context.Background()

	wantChanged := []bool{true, false, true}
	for i, want := range wantChanged {
		changed, err := o.Refresh(ctx)
		if err != nil {
			t.Fatalf("refresh %d: %v", i, err)
		}
		if changed != want {
			t.Errorf("refresh %d changed = %v, want %v", i, changed, want)
		}
	}

	if len(rec.events) != 2 {
		t.Fatalf("published %d events, want 2", len(rec.events))
	}
	second := rec.events[1]
	if second.Previous != "aaa" || second.Fingerprint != "bbb" || second.Invalidated != 3 {
		t.Errorf("event = %+v", second)
	}
	if second.Teams != 1 || second.Players != 1 || second.GamesPlayed != 1 || second.EventID == "" {
		t.Errorf("event counts = %+v", second)
	}

	if len(rec.updates) != 4 {
		t.Fatalf("broadcast %d updates, want 4", len(rec.updates))
	}
	if rec.updates[2].Mode != leaderboard.ModePlayers || rec.updates[3].Mode != leaderboard.ModeTeams {
		t.Errorf("modes = %s, %s", rec.updates[2].Mode, rec.updates[3].Mode)
	}
	if got := boards.invalidated; len(got) != 2 || got[0] != "" || got[1] != "aaa" {
		t.Errorf("invalidated = %v", got)
	}

	status := o.GetStatus()
	if status["refreshes"] != 3 || status["changes"] != 2 || status["fingerprint"] != "bbb" {
		t.Errorf("status = %v", status)
	}
}

func TestRefresh_Error(t *testing.T) {
	boom := errors.New("db down")
	o := scheduler.NewOrchestrator(&fakeBoards{err: boom}, nil, nil, nil, quietLogger())

	if _, err := o.Refresh(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestStart_StopsOnCancel(t *testing.T) {
	boards := &fakeBoards{snaps: []service.Snapshot{snapshot("aaa")}}
	rec := &recorder{}
	cfg := &scheduler.Config{RefreshInterval: time.Hour, EnableRefresh: true, MaxRetries: 1}
	o := scheduler.NewOrchestrator(boards, rec, nil, cfg, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		o.Start(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for o.GetStatus()["refreshes"] != 1 {
		if time.Now().After(deadline) {
			t.Fatal("initial refresh never ran")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
