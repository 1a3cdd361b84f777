package publication

import "time"

// Publication schedules a post onto a media account at a date. MediaID and
// PostID are weak references validated by the service layer; "published" is
// derived state (date at or before now), never stored.
type Publication struct {
	ID      int64     `json:"id"`
	MediaID int64     `json:"mediaId"`
	PostID  int64     `json:"postId"`
	Date    time.Time `json:"date"`
}

// Published reports whether the publication date has been reached.
func (p Publication) Published(now time.Time) bool {
	return !p.Date.After(now)
}
