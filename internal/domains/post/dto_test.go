package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePostRequestValidate(t *testing.T) {
	image := "https://picsum.photos/200"
	empty := ""

	tests := []struct {
		name    string
		req     CreatePostRequest
		wantErr bool
	}{
		{name: "valid without image", req: CreatePostRequest{Title: "t", Text: "x"}},
		{name: "valid with image", req: CreatePostRequest{Title: "t", Text: "x", Image: &image}},
		{name: "missing title", req: CreatePostRequest{Text: "x"}, wantErr: true},
		{name: "missing text", req: CreatePostRequest{Title: "t"}, wantErr: true},
		{name: "empty image", req: CreatePostRequest{Title: "t", Text: "x", Image: &empty}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
