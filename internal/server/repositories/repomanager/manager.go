package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/rfidcredits/internal/dbx"
	"github.com/dmitrijs2005/rfidcredits/internal/server/repositories/cards"
	"github.com/dmitrijs2005/rfidcredits/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Cards(db dbx.DBTX) cards.Repository
}
