package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/packmate/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/packmate/internal/dbx"
)

// Persister stores the session across process restarts.
type Persister interface {
	Load(ctx context.Context) (token, username string, err error)
	Save(ctx context.Context, token, username string) error
	Clear(ctx context.Context) error
}

// SQLPersister keeps the session in the local metadata table. Writes go
// through a repository bound to a transaction.
type SQLPersister struct {
	db   *sql.DB
	repo func(dbx.DBTX) metadata.Repository
}

func NewSQLPersister(db *sql.DB) *SQLPersister {
	return &SQLPersister{
		db:   db,
		repo: func(tx dbx.DBTX) metadata.Repository { return metadata.NewSQLiteRepository(tx) },
	}
}

func (p *SQLPersister) Load(ctx context.Context) (string, string, error) {
	all, err := p.repo(p.db).List(ctx)
	if err != nil {
		return "", "", err
	}
	return string(all[metadata.KeyToken]), string(all[metadata.KeyUsername]), nil
}

// Save writes token and username in one transaction.
func (p *SQLPersister) Save(ctx context.Context, token, username string) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := p.repo(tx)
		if err := repo.Set(ctx, metadata.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyUsername, []byte(username))
	})
}

// Clear removes the session keys and leaves other metadata alone.
func (p *SQLPersister) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := p.repo(tx)
		for _, key := range []string{metadata.KeyToken, metadata.KeyUsername} {
			if err := repo.Delete(ctx, key); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
		}
		return nil
	})
}
