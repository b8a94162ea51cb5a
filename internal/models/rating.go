package models

// Rating is a single user's score for a movie, keyed by the
// (userId, movieId) pair. Values lie in [0.0, 5.0]. Timestamps are unix
// epoch seconds, as shipped by the dataset.
type Rating struct {
	UserID    int64   `gorm:"primaryKey;column:user_id" json:"userId" example:"7"`
	MovieID   int64   `gorm:"primaryKey;column:movie_id;index" json:"movieId" example:"1"`
	Rating    float64 `gorm:"not null" json:"rating" example:"4.5"`
	Timestamp int64   `json:"timestamp" example:"964982703"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingSimple is the list projection of a rating, without the timestamp.
type RatingSimple struct {
	UserID  int64   `json:"userId" example:"7"`
	MovieID int64   `json:"movieId" example:"1"`
	Rating  float64 `json:"rating" example:"4.5"`
}

// Simple projects the stored row to its list shape.
func (r Rating) Simple() RatingSimple {
	return RatingSimple{
		UserID:  r.UserID,
		MovieID: r.MovieID,
		Rating:  r.Rating,
	}
}

// MovieRatingStats holds the derived per-movie aggregates. The average is
// undefined (nil) when the movie has no ratings; the count is 0 in that
// case, which is a distinct, well-defined value.
type MovieRatingStats struct {
	MovieID       int64    `json:"movie_id" example:"1"`
	AverageRating *float64 `json:"average_rating" example:"3.9"`
	RatingCount   int64    `json:"rating_count" example:"215"`
}
