package media

// Media is a registered social media account that posts can be published to.
// No two medias may share the same (title, username) pair.
type Media struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Username string `json:"username"`
}
