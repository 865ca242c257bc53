package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/packmate/internal/client/client"
	"github.com/dmitrijs2005/packmate/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/packmate/internal/dbx"
)

// failingRepo fails writes to one key and delegates everything else.
type failingRepo struct {
	metadata.Repository
	key string
}

func (r failingRepo) Set(ctx context.Context, key string, value []byte) error {
	if key == r.key {
		return errors.New("disk full")
	}
	return r.Repository.Set(ctx, key, value)
}

func TestSQLPersister_SaveIsAtomic(t *testing.T) {
	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p := NewSQLPersister(db)
	require.NoError(t, p.Save(ctx, "jwt-1", "alice"))

	p.repo = func(tx dbx.DBTX) metadata.Repository {
		return failingRepo{Repository: metadata.NewSQLiteRepository(tx), key: metadata.KeyUsername}
	}
	require.Error(t, p.Save(ctx, "jwt-2", "bob"))

	tok, user, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", tok)
	assert.Equal(t, "alice", user)

	s := NewStore(&fakeAuth{token: "jwt-3"}, p, nil)
	require.NoError(t, s.Hydrate(ctx))
	require.Error(t, s.Login(ctx, "bob", "pw"))
	assert.Equal(t, "jwt-1", s.Token())
	assert.Equal(t, "alice", s.Username())
}

func TestSQLPersister_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	db, err := client.InitDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p := NewSQLPersister(db)

	tok, user, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Empty(t, user)

	require.NoError(t, p.Save(ctx, "jwt-1", "alice"))

	tok, user, err = p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", tok)
	assert.Equal(t, "alice", user)

	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "unrelated", []byte("keep")))

	require.NoError(t, p.Clear(ctx))
	require.NoError(t, p.Clear(ctx))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"unrelated": []byte("keep")}, all)
}

func TestStore_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	db, err := client.InitDatabase(ctx, path)
	require.NoError(t, err)

	s := NewStore(&fakeAuth{token: "jwt-1"}, NewSQLPersister(db), nil)
	require.NoError(t, s.Hydrate(ctx))
	require.NoError(t, s.Login(ctx, "alice", "pw"))
	require.NoError(t, db.Close())

	db, err = client.InitDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	restarted := NewStore(&fakeAuth{}, NewSQLPersister(db), nil)
	require.NoError(t, restarted.Hydrate(ctx))
	assert.Equal(t, Session{Token: "jwt-1", Username: "alice", Status: Ready}, restarted.Snapshot())
}
