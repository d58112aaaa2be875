package cards

import (
	"context"

	"github.com/dmitrijs2005/rfidcredits/internal/server/models"
)

type Repository interface {
	AddCredits(ctx context.Context, rfidID string, amount int64) (int64, error)
	Deduct(ctx context.Context, rfidID string, amount int64) (int64, error)
	Get(ctx context.Context, rfidID string) (*models.Card, error)
	List(ctx context.Context) ([]models.Card, error)
}
