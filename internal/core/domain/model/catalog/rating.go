package catalog

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

const (
	MinRating = 0
	MaxRating = 5
)

var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating is a score a user gave a menu item. The same user may leave
// several different scores on one item but never the same score twice.
type Rating struct {
	id         kernel.UUID
	userID     kernel.UUID
	menuItemID kernel.UUID
	score      int

	isConstructed bool
}

func NewRating(id, userID, menuItemID kernel.UUID, score int) (*Rating, error) {
	var errList []error
	for _, v := range []kernel.UUID{id, userID, menuItemID} {
		errList = append(errList, v.Validate())
	}
	if score < MinRating || score > MaxRating {
		errList = append(errList, errs.NewValueIsOutOfRangeError("rating", score, MinRating, MaxRating))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return RestoreRating(id, userID, menuItemID, score), nil
}

func RestoreRating(id, userID, menuItemID kernel.UUID, score int) *Rating {
	return &Rating{id: id, userID: userID, menuItemID: menuItemID, score: score, isConstructed: true}
}

func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

func (r *Rating) ID() kernel.UUID         { return r.id }
func (r *Rating) UserID() kernel.UUID     { return r.userID }
func (r *Rating) MenuItemID() kernel.UUID { return r.menuItemID }
func (r *Rating) Score() int              { return r.score }
