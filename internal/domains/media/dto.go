package media

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateMediaRequest struct {
	Title    string `json:"title"`
	Username string `json:"username"`
}

func (r CreateMediaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 255),
		),
	)
}

// UpdateMediaRequest carries the same shape as create; PUT replaces both
// fields.
type UpdateMediaRequest struct {
	Title    string `json:"title"`
	Username string `json:"username"`
}

func (r UpdateMediaRequest) Validate() error {
	return CreateMediaRequest(r).Validate()
}
