package post

// Post is a piece of content waiting to be scheduled onto a media account.
// Image is optional and omitted from responses when absent.
type Post struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Text  string  `json:"text"`
	Image *string `json:"image,omitempty"`
}
