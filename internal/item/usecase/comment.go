package usecase

import (
	"context"
	"fmt"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// CreateComment lets a user review an item they have finished renting.
func (uc *implUseCase) CreateComment(ctx context.Context, sc model.Scope, input item.CommentInput) (model.Comment, error) {
	if strings.TrimSpace(input.Text) == "" {
		return model.Comment{}, item.ErrBlankComment
	}

	var out model.Comment
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.getUser(ctx, sc.UserID); err != nil {
			return err
		}
		if _, err := uc.getItem(ctx, input.ItemID); err != nil {
			return err
		}

		ok, err := uc.bookings.HasCompletedBooking(ctx, sc.UserID, input.ItemID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.CreateComment HasCompletedBooking: %v", err)
			return err
		}
		if !ok {
			return fmt.Errorf("%w: user %d, item %d", item.ErrNoCompletedBooking, sc.UserID, input.ItemID)
		}

		c, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
			Text:      input.Text,
			ItemID:    input.ItemID,
			AuthorID:  sc.UserID,
			CreatedAt: uc.now(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CreateComment CreateComment: %v", err)
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return model.Comment{}, err
	}
	return out, nil
}
