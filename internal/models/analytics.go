package models

// Statistics is the dataset-wide summary returned by the analytics
// endpoint. Everything is computed on demand; nothing is materialized.
// The average is null on an empty dataset.
type Statistics struct {
	MovieCount    int64    `json:"movie_count" example:"9742"`
	RatingCount   int64    `json:"rating_count" example:"100836"`
	TagCount      int64    `json:"tag_count" example:"3683"`
	LinkCount     int64    `json:"link_count" example:"9742"`
	UserCount     int64    `json:"user_count" example:"610"`
	AverageRating *float64 `json:"average_rating" example:"3.5"`
}
