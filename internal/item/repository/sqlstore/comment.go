package sqlstore

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/pkg/sqldb"
)

// CreateComment inserts a Comment and returns it with the author's name.
func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	created := sqldb.Timestamp(opt.CreatedAt)
	id, err := r.db.InsertReturningID(ctx, r.db.InsertInto(tableComments).Rows(goqu.Record{
		"text":       opt.Text,
		"item_id":    opt.ItemID,
		"author_id":  opt.AuthorID,
		"created_at": created,
	}))
	if err != nil {
		if sqldb.IsForeignKeyViolation(err) {
			return model.Comment{}, repo.ErrReferenceMissing
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repo.ErrFailedToInsert
	}

	var comments []model.Comment
	ds := r.selectComments().Where(goqu.I("c.id").Eq(id))
	if err := r.db.Select(ctx, &comments, ds); err != nil || len(comments) == 0 {
		r.l.Errorf(ctx, "%s: reload %d: %v", r.dsn("CreateComment"), id, err)
		return model.Comment{}, repo.ErrFailedToGet
	}
	c := comments[0]
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

// ListComments returns the comments of opt.ItemIDs, oldest first.
func (r *implRepository) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]model.Comment, error) {
	if len(opt.ItemIDs) == 0 {
		return []model.Comment{}, nil
	}

	ds := r.selectComments().
		Where(goqu.I("c.item_id").In(opt.ItemIDs)).
		Order(goqu.I("c.created_at").Asc(), goqu.I("c.id").Asc())

	comments := make([]model.Comment, 0)
	if err := r.db.Select(ctx, &comments, ds); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	for i := range comments {
		comments[i].CreatedAt = comments[i].CreatedAt.UTC()
	}
	return comments, nil
}

func (r *implRepository) selectComments() *goqu.SelectDataset {
	return r.db.From(goqu.T(tableComments).As("c")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("c.author_id")))).
		Select(
			goqu.I("c.id").As("id"),
			goqu.I("c.text").As("text"),
			goqu.I("c.item_id").As("item_id"),
			goqu.I("c.author_id").As("author_id"),
			goqu.I("u.name").As("author_name"),
			goqu.I("c.created_at").As("created_at"),
		)
}
