package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreatePostRequest struct {
	Title string  `json:"title"`
	Text  string  `json:"text"`
	Image *string `json:"image,omitempty"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
		),
		validation.Field(&r.Image,
			validation.NilOrNotEmpty.Error("image must not be empty when provided"),
		),
	)
}

type UpdatePostRequest struct {
	Title string  `json:"title"`
	Text  string  `json:"text"`
	Image *string `json:"image,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return CreatePostRequest(r).Validate()
}
