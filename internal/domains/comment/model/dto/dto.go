package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/comment/model"
	"tourism/shared"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
)

type CreateCommentRequest struct {
	Feedback string `json:"feedback" validate:"required,max=1000"`
}

func (r *CreateCommentRequest) ToModel(userID string) model.Comment {
	return model.Comment{
		ID:       uuid.NewString(),
		Feedback: r.Feedback,
		UserID:   userID,
		Metadata: gModel.NewMetadata(userID),
	}
}

type CommentResponse struct {
	ID       string `json:"id"`
	Feedback string `json:"feedback"`
	User     string `json:"user"`
	gDto.Metadata
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.Feedback = model.Feedback
	r.User = model.UserID
	r.Metadata.FromModel(model.Metadata)
}

type GetCommentsResponse struct {
	Comments  []CommentResponse `json:"comments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCommentsResponse) FromModels(models []model.Comment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Comments = make([]CommentResponse, len(models))
	for i, mod := range models {
		r.Comments[i].FromModel(mod)
	}
}
