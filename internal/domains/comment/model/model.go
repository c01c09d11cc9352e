package model

import "tourism/shared/model"

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID       = "id"
	FieldFeedback = "feedback"
	FieldUserID   = "user_id"

	ConstraintUserID = "comments_user_id_fkey"
)

type Comment struct {
	ID       string `db:"id"`
	Feedback string `db:"feedback"`
	UserID   string `db:"user_id"`
	model.Metadata
}
