package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"hotel-concierge/internal/domain/reservation"
	"hotel-concierge/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS reservations (
	reservation_number TEXT PRIMARY KEY,
	guest_name         TEXT NOT NULL DEFAULT '',
	room_type          TEXT NOT NULL DEFAULT '',
	check_in           TEXT NOT NULL DEFAULT '',
	check_out          TEXT NOT NULL DEFAULT '',
	has_breakfast      BOOLEAN NOT NULL DEFAULT FALSE,
	last_payment_id    TEXT,
	last_amendment     JSONB
)`

func main() {
	var (
		databaseURL      string
		reservationsFile string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&reservationsFile, "reservations-file", "db/reservations.json", "path to reservations JSON file")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, reservationsFile); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, reservationsFile string) error {
	data, err := os.ReadFile(reservationsFile)
	if err != nil {
		return errs.Wrap(err, "read reservations file")
	}

	var reservations []reservation.Reservation
	if err := json.Unmarshal(data, &reservations); err != nil {
		return errs.Wrap(err, "parse reservations file")
	}

	slog.Info("connecting to database")

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return errs.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return errs.Wrap(err, "create reservations table")
	}

	for _, res := range reservations {
		var amendmentJSON []byte
		if res.LastAmendment != nil {
			amendmentJSON, err = json.Marshal(res.LastAmendment)
			if err != nil {
				return errs.Wrap(err, "encode amendment")
			}
		}

		_, err = pool.Exec(ctx,
			`INSERT INTO reservations (reservation_number, guest_name, room_type, check_in, check_out, has_breakfast, last_payment_id, last_amendment)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (reservation_number) DO UPDATE SET
				guest_name = EXCLUDED.guest_name,
				room_type = EXCLUDED.room_type,
				check_in = EXCLUDED.check_in,
				check_out = EXCLUDED.check_out,
				has_breakfast = EXCLUDED.has_breakfast`,
			res.Number, res.GuestName, res.RoomType, res.CheckIn, res.CheckOut, res.HasBreakfast, res.LastPaymentID, amendmentJSON,
		)
		if err != nil {
			return errs.Wrap(err, "upsert reservation "+res.Number)
		}

		slog.Info("seeded reservation", slog.String("reservation_number", res.Number))
	}

	return nil
}
