// Command import loads a league snapshot JSON file into Atlas.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/leaderboard"
	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

const (
	appName    = "courtside-import"
	appVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		logrus.Fatalf("Invalid logging configuration: %v", err)
	}
	log := logger.WithField("service", appName)
	log.Infof("=== %s v%s ===", appName, appVersion)

	var (
		atlasDSN = flag.String("dsn", cfg.AtlasDSN, "Atlas DSN")
		season   = flag.String("season", cfg.CurrentSeason, "Season to write (e.g., 2025-26)")
		file     = flag.String("file", "", "League snapshot JSON ({teams, schedule})")
		dryRun   = flag.Bool("dry-run", false, "Validate and summarize without writing")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("Specify --file")
	}

	league, err := readLeague(*file)
	if err != nil {
		log.Fatalf("read snapshot: %v", err)
	}

	fp, err := service.Fingerprint(league)
	if err != nil {
		log.Fatalf("fingerprint: %v", err)
	}
	printSummary(league, fp)

	if *dryRun {
		log.Info("Dry run: nothing written")
		return
	}

	db, err := store.NewDatabase(*atlasDSN, log)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.RunMigrations(ctx); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	start := time.Now()
	if err := repository.NewLeagueLoader(db).Save(ctx, *season, league); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}
	log.Infof("✓ Imported season %s in %v", *season, time.Since(start).Round(time.Millisecond))
}

func readLeague(path string) (leaderboard.League, error) {
	f, err := os.Open(path)
	if err != nil {
		return leaderboard.League{}, err
	}
	defer f.Close()

	var league leaderboard.League
	if err := json.NewDecoder(f).Decode(&league); err != nil {
		return leaderboard.League{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return league, nil
}

func printSummary(league leaderboard.League, fingerprint string) {
	players, played, boxed := 0, 0, 0
	for _, t := range league.Teams {
		players += len(t.Roster)
	}
	for _, g := range league.Schedule {
		if g.Played {
			played++
		}
		if g.HomeStats != nil && g.AwayStats != nil {
			boxed++
		}
	}

	fmt.Println("────────────────────────────────────────")
	fmt.Printf("Teams:        %d\n", len(league.Teams))
	fmt.Printf("Players:      %d\n", players)
	fmt.Printf("Games:        %d (%d played, %d with box scores)\n", len(league.Schedule), played, boxed)
	fmt.Printf("Fingerprint:  %s\n", fingerprint)
	fmt.Println("────────────────────────────────────────")
}
