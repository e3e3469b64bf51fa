package sqlstore

import (
	"context"
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
	"shareit/pkg/log"
	"shareit/pkg/sqldb/sqldbtest"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := sqldbtest.Open(t)
	r := New(db, log.NewNop())

	ann, err := r.CreateUser(ctx, repo.CreateUserOptions{Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, ann.ID)

	_, err = r.CreateUser(ctx, repo.CreateUserOptions{Name: "Impostor", Email: "ann@example.com"})
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)

	bob, err := r.CreateUser(ctx, repo.CreateUserOptions{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	got, err := r.GetOneUser(ctx, repo.GetOneUserOptions{Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, bob, got)

	missing, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: 999})
	require.NoError(t, err)
	assert.Equal(t, model.User{}, missing)

	_, err = r.UpdateUser(ctx, repo.UpdateUserOptions{ID: bob.ID, Name: "Bob", Email: "ann@example.com"})
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)

	updated, err := r.UpdateUser(ctx, repo.UpdateUserOptions{ID: bob.ID, Name: "Robert", Email: "robert@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)

	gone, err := r.UpdateUser(ctx, repo.UpdateUserOptions{ID: 999, Name: "X", Email: "x@example.com"})
	require.NoError(t, err)
	assert.Zero(t, gone.ID)

	users, err := r.ListUsers(ctx, repo.ListUsersOptions{})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, ann.ID, users[0].ID)

	require.NoError(t, r.DeleteUser(ctx, ann.ID))
	users, err = r.ListUsers(ctx, repo.ListUsersOptions{})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestDeleteReferencedUser(t *testing.T) {
	ctx := context.Background()
	db := sqldbtest.Open(t)
	r := New(db, log.NewNop())

	owner, err := r.CreateUser(ctx, repo.CreateUserOptions{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)

	_, err = db.InsertReturningID(ctx, db.InsertInto("items").Rows(goqu.Record{
		"name":         "Drill",
		"description":  "Cordless",
		"is_available": true,
		"owner_id":     owner.ID,
	}))
	require.NoError(t, err)

	assert.ErrorIs(t, r.DeleteUser(ctx, owner.ID), repo.ErrStillReferenced)
}
