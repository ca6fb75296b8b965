package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"hotel-concierge/internal/domain/reservation"
	"hotel-concierge/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `reservation_number, guest_name, room_type, check_in, check_out, has_breakfast, last_payment_id, last_amendment`

type ReservationRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReservationRepository(pool *pgxpool.Pool, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *ReservationRepository) FindByNumber(ctx context.Context, number string) (*reservation.Reservation, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+reservationColumns+`
		 FROM reservations
		 WHERE btrim(reservation_number) = $1`,
		number,
	)

	res, err := scanReservation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", err)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find reservation", err)
	}

	return res, nil
}

// ApplyAmendment sets the breakfast flag and the audit fields in one
// conditional UPDATE. The guard on has_breakfast makes the already-applied
// re-check and the merge-patch a single atomic write, so two racing
// confirmations can never both commit.
func (r *ReservationRepository) ApplyAmendment(ctx context.Context, number string, paymentID string, amendment reservation.Amendment) (*reservation.Reservation, error) {
	amendmentJSON, err := json.Marshal(amendment)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode amendment", err)
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE reservations
		 SET has_breakfast = TRUE, last_payment_id = $2, last_amendment = $3
		 WHERE btrim(reservation_number) = $1 AND has_breakfast = FALSE
		 RETURNING `+reservationColumns,
		number, paymentID, amendmentJSON,
	)

	res, err := scanReservation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMissedUpdate(ctx, number)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to amend reservation", err)
	}

	return res, nil
}

// classifyMissedUpdate distinguishes a record that vanished mid-workflow from
// one whose guard condition was consumed by a concurrent confirmation.
func (r *ReservationRepository) classifyMissedUpdate(ctx context.Context, number string) error {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reservations WHERE btrim(reservation_number) = $1)`,
		number,
	).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to probe reservation after missed update", err)
	}

	if exists {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "reservation already amended", nil)
	}
	return infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation vanished before update", nil)
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		res           reservation.Reservation
		amendmentJSON []byte
	)

	err := row.Scan(
		&res.Number,
		&res.GuestName,
		&res.RoomType,
		&res.CheckIn,
		&res.CheckOut,
		&res.HasBreakfast,
		&res.LastPaymentID,
		&amendmentJSON,
	)
	if err != nil {
		return nil, err
	}

	if len(amendmentJSON) > 0 {
		var amendment reservation.Amendment
		if err := json.Unmarshal(amendmentJSON, &amendment); err != nil {
			return nil, err
		}
		res.LastAmendment = &amendment
	}

	return &res, nil
}
