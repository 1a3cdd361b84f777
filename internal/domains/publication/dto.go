package publication

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreatePublicationRequest struct {
	MediaID int64     `json:"mediaId"`
	PostID  int64     `json:"postId"`
	Date    time.Time `json:"date"`
}

func (r CreatePublicationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MediaID,
			validation.Required.Error("mediaId is required"),
			validation.Min(int64(1)).Error("mediaId must be a positive integer"),
		),
		validation.Field(&r.PostID,
			validation.Required.Error("postId is required"),
			validation.Min(int64(1)).Error("postId must be a positive integer"),
		),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
		),
	)
}

type UpdatePublicationRequest struct {
	MediaID int64     `json:"mediaId"`
	PostID  int64     `json:"postId"`
	Date    time.Time `json:"date"`
}

func (r UpdatePublicationRequest) Validate() error {
	return CreatePublicationRequest(r).Validate()
}
