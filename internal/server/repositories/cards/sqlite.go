package cards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/dbx"
	"github.com/dmitrijs2005/rfidcredits/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// AddCredits adds amount to the card, creating it on first top-up, and
// returns the new balance.
func (r *SQLiteRepository) AddCredits(ctx context.Context, rfidID string, amount int64) (int64, error) {
	query :=
		`INSERT INTO rfid_cards (rfid_id, credits)
		 VALUES (?, ?)
		 ON CONFLICT(rfid_id) DO UPDATE SET credits = credits + excluded.credits
		 RETURNING credits
		 `

	var credits int64
	if err := r.db.QueryRowContext(ctx, query, rfidID, amount).Scan(&credits); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return credits, nil
}

// Deduct subtracts amount from an existing card and returns the new balance.
// Balance checks are left to the caller.
func (r *SQLiteRepository) Deduct(ctx context.Context, rfidID string, amount int64) (int64, error) {
	query :=
		`UPDATE rfid_cards SET credits = credits - ?
		 WHERE rfid_id = ?
		 RETURNING credits
		 `

	var credits int64
	if err := r.db.QueryRowContext(ctx, query, amount, rfidID).Scan(&credits); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return credits, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, rfidID string) (*models.Card, error) {
	query :=
		`SELECT id, rfid_id, credits FROM rfid_cards
		 WHERE rfid_id = ?
		 `

	card := &models.Card{}
	err := r.db.QueryRowContext(ctx, query, rfidID).Scan(&card.ID, &card.RFIDID, &card.Credits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Card, error) {
	query := `SELECT id, rfid_id, credits FROM rfid_cards ORDER BY rfid_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Card
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.RFIDID, &c.Credits); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
