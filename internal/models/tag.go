package models

// Tag is a free-text label a user applied to a movie. The full
// (userId, movieId, tag) triple is the key: several users may apply the
// same text to the same movie.
type Tag struct {
	UserID    int64  `gorm:"primaryKey;column:user_id" json:"userId" example:"18"`
	MovieID   int64  `gorm:"primaryKey;column:movie_id;index" json:"movieId" example:"1"`
	Tag       string `gorm:"primaryKey;column:tag" json:"tag" example:"pixar"`
	Timestamp int64  `json:"timestamp" example:"1139045764"`
}

func (Tag) TableName() string {
	return "tags"
}

// TagSimple is the list projection of a tag, without the timestamp.
type TagSimple struct {
	UserID  int64  `json:"userId" example:"18"`
	MovieID int64  `json:"movieId" example:"1"`
	Tag     string `json:"tag" example:"pixar"`
}

// Simple projects the stored row to its list shape.
func (t Tag) Simple() TagSimple {
	return TagSimple{
		UserID:  t.UserID,
		MovieID: t.MovieID,
		Tag:     t.Tag,
	}
}

// TagCount is one entry of the tag popularity ranking. Grouping is
// case-sensitive, exactly as the text is stored.
type TagCount struct {
	Tag   string `json:"tag" example:"atmospheric"`
	Count int64  `json:"count" example:"36"`
}
