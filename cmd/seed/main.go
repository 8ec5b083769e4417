// Command seed is a maintenance utility for local development databases.
// It can load a small demo dataset, print per-table row counts, dump every
// row, and wipe all user data. It talks to the same store layer as the
// server, so anything it writes goes through the same schema checks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/grindtime/api/internal/config"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/service"
	"github.com/grindtime/api/internal/store"
	"github.com/grindtime/api/internal/utils"
	"github.com/grindtime/api/models"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	var (
		dsn    string
		seed   bool
		counts bool
		dump   bool
		wipe   bool
	)

	flag.StringVar(&dsn, "d", "grindtime.db", "database DSN (SQLite file path or postgres:// URL)")
	flag.BoolVar(&seed, "seed", false, "insert a demo user with sample records")
	flag.BoolVar(&counts, "counts", false, "print row counts for every table")
	flag.BoolVar(&dump, "dump", false, "print every row of every table")
	flag.BoolVar(&wipe, "wipe", false, "delete all users and their records")
	flag.Parse()

	if !seed && !counts && !dump && !wipe {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.NewLogger("grindtime-seed")
	ctx := context.Background()

	db, err := store.NewConnect(ctx, config.DB{DSN: dsn}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	if wipe {
		if err = storages.RecordRepository.DeleteAllUsers(ctx); err != nil {
			log.Fatal().Err(err).Msg("error wiping users")
		}

		fmt.Println("all users deleted")
	}

	if seed {
		if err = seedAll(ctx, storages); err != nil {
			log.Fatal().Err(err).Msg("error seeding data")
		}

		fmt.Println("demo data inserted")
	}

	if counts {
		records := service.NewRecordService(storages.RecordRepository, log)
		if err = printCounts(ctx, records); err != nil {
			log.Fatal().Err(err).Msg("error counting rows")
		}
	}

	if dump {
		if err = printAllRows(ctx, storages.RecordRepository); err != nil {
			log.Fatal().Err(err).Msg("error dumping rows")
		}
	}
}

// seedAll creates one demo user and a sample record in each fitness table.
func seedAll(ctx context.Context, storages *store.Storages) error {
	hash, err := utils.HashPassword("demo-password", bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := storages.UserRepository.CreateUser(ctx, models.User{
		Email:        "demo@grindtime.local",
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	samples := map[string]map[string]any{
		"calorie_results": {
			"user_id":         user.UserID,
			"sex":             "male",
			"age":             30,
			"height_cm":       180.0,
			"weight_kg":       82.5,
			"activity_factor": 1.55,
			"bmr":             1850.0,
			"tdee":            2870.0,
			"goal":            "cut",
			"target_kcal":     2370.0,
		},
		"body_metrics": {
			"user_id":     user.UserID,
			"measured_at": "2025-01-06",
			"weight_kg":   82.5,
			"bodyfat_pct": 18.2,
			"waist_cm":    86.0,
		},
		"nutrition_entries": {
			"user_id":     user.UserID,
			"eaten_at":    "2025-01-06T08:30:00Z",
			"description": "oatmeal with whey",
			"calories":    420.0,
			"protein_g":   38.0,
			"carbs_g":     52.0,
			"fat_g":       8.0,
		},
		"workout_sessions": {
			"user_id":    user.UserID,
			"started_at": "2025-01-06T17:00:00Z",
			"ended_at":   "2025-01-06T18:10:00Z",
			"notes":      "push day",
		},
	}

	sessionID, err := storages.RecordRepository.Insert(ctx, "workout_sessions", samples["workout_sessions"])
	if err != nil {
		return err
	}
	delete(samples, "workout_sessions")

	samples["workout_sets"] = map[string]any{
		"user_id":       user.UserID,
		"session_id":    sessionID,
		"exercise_name": "bench press",
		"set_index":     1,
		"reps":          8,
		"weight_kg":     80.0,
		"rpe":           8.0,
	}

	for table, fields := range samples {
		if _, err = storages.RecordRepository.Insert(ctx, table, fields); err != nil {
			return fmt.Errorf("seeding %s: %w", table, err)
		}
	}

	return nil
}

func printCounts(ctx context.Context, records service.RecordService) error {
	counts, err := records.TableCounts(ctx)
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		fmt.Printf("%-20s %d\n", table, counts[table])
	}

	return nil
}

func printAllRows(ctx context.Context, records store.RecordRepository) error {
	tables, err := records.Tables(ctx)
	if err != nil {
		return err
	}
	sort.Strings(tables)

	for _, table := range tables {
		rows, err := records.Rows(ctx, table)
		if err != nil {
			return err
		}

		fmt.Printf("== %s (%d rows)\n", table, len(rows))
		for _, row := range rows {
			fmt.Printf("  %v\n", row)
		}
	}

	return nil
}
