package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func ratingPtr(v float64) *float64 { return &v }

func TestSubmit_RatingOnlyIsApprovedImmediately(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	rev, err := service.Submit(7, 1, nil, ratingPtr(4.5))
	require.NoError(t, err)
	assert.Equal(t, ModerationApproved, rev.Approved)
}

func TestSubmit_CommentWaitsForModeration(t *testing.T) {
	names := map[int]string{7: "Ada"}
	repo := NewInMemoryRepository(names)
	service := NewService(repo)

	rev, err := service.Submit(7, 1, strPtr("Lovely crema"), ratingPtr(5))
	require.NoError(t, err)
	assert.Equal(t, ModerationPending, rev.Approved)

	// pending reviews stay invisible
	visible, err := service.ListApproved(1)
	require.NoError(t, err)
	assert.Empty(t, visible)

	// approval makes the review public with the author's name joined in
	require.NoError(t, service.Moderate(rev.ID, ModerationApproved))
	visible, err = service.ListApproved(1)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Ada", visible[0].ReviewerName)
}

func TestSubmit_Validation(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	_, err := service.Submit(7, 1, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyReview)

	_, err = service.Submit(7, 1, nil, ratingPtr(0.5))
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = service.Submit(7, 1, nil, ratingPtr(5.5))
	assert.ErrorIs(t, err, ErrInvalidRating)

	// a comment with no rating is a valid submission
	_, err = service.Submit(7, 1, strPtr("Smooth finish"), nil)
	assert.NoError(t, err)
}

func TestModerate_RejectionHidesReview(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	rev, err := service.Submit(7, 1, strPtr("Burnt taste"), nil)
	require.NoError(t, err)

	require.NoError(t, service.Moderate(rev.ID, ModerationRejected))
	visible, err := service.ListApproved(1)
	require.NoError(t, err)
	assert.Empty(t, visible)

	stored, err := repo.GetByID(rev.ID)
	require.NoError(t, err)
	assert.Equal(t, ModerationRejected, stored.Approved)
}

func TestModerate_UnknownReview(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))
	assert.ErrorIs(t, service.Moderate(404, ModerationApproved), ErrNotFound)
}
