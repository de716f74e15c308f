package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCommentRequest struct {
	Text string `json:"text"`
}

func (req *CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Text, validation.Required, validation.Length(1, 500)),
	)
}
