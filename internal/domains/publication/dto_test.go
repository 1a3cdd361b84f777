package publication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreatePublicationRequestValidate(t *testing.T) {
	valid := CreatePublicationRequest{
		MediaID: 1,
		PostID:  2,
		Date:    time.Date(2035, 8, 21, 13, 25, 17, 0, time.UTC),
	}

	tests := []struct {
		name    string
		mutate  func(*CreatePublicationRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(*CreatePublicationRequest) {}},
		{name: "missing mediaId", mutate: func(r *CreatePublicationRequest) { r.MediaID = 0 }, wantErr: true},
		{name: "negative postId", mutate: func(r *CreatePublicationRequest) { r.PostID = -1 }, wantErr: true},
		{name: "missing date", mutate: func(r *CreatePublicationRequest) { r.Date = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
