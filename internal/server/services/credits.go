package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/dbx"
	"github.com/dmitrijs2005/rfidcredits/internal/server/models"
	"github.com/dmitrijs2005/rfidcredits/internal/server/repositories/repomanager"
)

// CreditService keeps card balances. Balance changes run in a transaction.
type CreditService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	spinCost    int64
}

func NewCreditService(db *sql.DB, m repomanager.RepositoryManager, spinCost int64) *CreditService {
	return &CreditService{db: db, repomanager: m, spinCost: spinCost}
}

// AddCredits adds amount to the card (created on first top-up) and returns
// the new balance.
func (s *CreditService) AddCredits(ctx context.Context, rfidID string, amount int64) (int64, error) {
	if rfidID == "" {
		return 0, fmt.Errorf("%w: empty rfid_id", common.ErrorValidation)
	}

	credits, err := dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (int64, error) {
		return s.repomanager.Cards(tx).AddCredits(ctx, rfidID, amount)
	})
	if err != nil {
		return 0, fmt.Errorf("error adding credits: %w", err)
	}
	return credits, nil
}

// Deduct charges one spin. If the card holds less than the spin cost the
// balance is left unchanged and returned with common.ErrorInsufficientCredits.
func (s *CreditService) Deduct(ctx context.Context, rfidID string) (int64, error) {
	if rfidID == "" {
		return 0, fmt.Errorf("%w: empty rfid_id", common.ErrorValidation)
	}

	credits, err := dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (int64, error) {
		repo := s.repomanager.Cards(tx)

		card, err := repo.Get(ctx, rfidID)
		if err != nil {
			return 0, err
		}
		if card.Credits < s.spinCost {
			return card.Credits, common.ErrorInsufficientCredits
		}
		return repo.Deduct(ctx, rfidID, s.spinCost)
	})
	switch {
	case err == nil:
		return credits, nil
	case errors.Is(err, common.ErrorInsufficientCredits):
		return credits, err
	case errors.Is(err, common.ErrorNotFound):
		return 0, err
	default:
		return 0, fmt.Errorf("error deducting credits: %w", err)
	}
}

// Cards lists all cards ordered by identifier.
func (s *CreditService) Cards(ctx context.Context) ([]models.Card, error) {
	return s.repomanager.Cards(s.db).List(ctx)
}
