package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

// recorder is an in-memory database/sql driver that logs statements and
// can fail the first one containing failOn
type recorder struct {
	mu     sync.Mutex
	failOn string
	log    []string
}

func (r *recorder) record(entry string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = append(r.log, entry)
}

func (r *recorder) entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.log...)
}

var (
	recordersMu  sync.Mutex
	recorders    = map[string]*recorder{}
	registerOnce sync.Once
)

type recordingDriver struct{}

func (recordingDriver) Open(name string) (driver.Conn, error) {
	recordersMu.Lock()
	defer recordersMu.Unlock()
	r, ok := recorders[name]
	if !ok {
		return nil, errors.New("unknown recorder " + name)
	}
	return &recordingConn{r: r}, nil
}

type recordingConn struct{ r *recorder }

func (c *recordingConn) Prepare(query string) (driver.Stmt, error) {
	return &recordingStmt{r: c.r, query: strings.Join(strings.Fields(query), " ")}, nil
}
func (c *recordingConn) Close() error { return nil }
func (c *recordingConn) Begin() (driver.Tx, error) {
	c.r.record("BEGIN")
	return &recordingTx{r: c.r}, nil
}

type recordingTx struct{ r *recorder }

func (t *recordingTx) Commit() error   { t.r.record("COMMIT"); return nil }
func (t *recordingTx) Rollback() error { t.r.record("ROLLBACK"); return nil }

type recordingStmt struct {
	r     *recorder
	query string
}

func (s *recordingStmt) Close() error  { return nil }
func (s *recordingStmt) NumInput() int { return -1 }
func (s *recordingStmt) Exec(args []driver.Value) (driver.Result, error) {
	if s.r.failOn != "" && strings.Contains(s.query, s.r.failOn) {
		return nil, errors.New("statement rejected")
	}
	s.r.record(s.query)
	return driver.RowsAffected(1), nil
}
func (s *recordingStmt) Query(args []driver.Value) (driver.Rows, error) {
	return nil, errors.New("queries not supported")
}

func recordingDB(t *testing.T, failOn string) (*store.Database, *recorder) {
	t.Helper()
	registerOnce.Do(func() { sql.Register("recording", recordingDriver{}) })

	r := &recorder{failOn: failOn}
	recordersMu.Lock()
	recorders[t.Name()] = r
	recordersMu.Unlock()

	conn, err := sql.Open("recording", t.Name())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)
	return store.NewDatabaseFromConn(conn, logrus.NewEntry(log)), r
}

func statementPrefixes(entries []string) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		fields := strings.Fields(e)
		switch {
		case len(fields) >= 3 && fields[0] == "DELETE":
			out[i] = "DELETE " + fields[2]
		case len(fields) >= 3 && fields[0] == "INSERT":
			out[i] = "INSERT " + fields[2]
		default:
			out[i] = e
		}
	}
	return out
}

func TestLeagueLoaderSave_ReplacesSeasonInOneTransaction(t *testing.T) {
	db, rec := recordingDB(t, "")
	teams, players, games := sampleRows()
	league := repository.BuildLeague(teams, players, games)

	if err := repository.NewLeagueLoader(db).Save(context.Background(), "2025-26", league); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := statementPrefixes(rec.entries())
	want := []string{
		"BEGIN",
		"DELETE games", "DELETE players", "DELETE teams",
		"INSERT teams", "INSERT teams",
		"INSERT players",
		"INSERT games",
		"COMMIT",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("statements:\n got %v\nwant %v", got, want)
	}
}

func TestLeagueLoaderSave_RollsBackOnFailure(t *testing.T) {
	db, rec := recordingDB(t, "INSERT INTO games")
	teams, players, games := sampleRows()
	league := repository.BuildLeague(teams, players, games)

	err := repository.NewLeagueLoader(db).Save(context.Background(), "2025-26", league)
	if err == nil {
		t.Fatal("expected error from failing insert")
	}

	entries := rec.entries()
	if last := entries[len(entries)-1]; last != "ROLLBACK" {
		t.Errorf("last statement = %q, want ROLLBACK", last)
	}
	for _, e := range entries {
		if e == "COMMIT" {
			t.Error("partial snapshot was committed")
		}
	}
}
