package models

// Movie is a catalog entry from the MovieLens dataset. Genres are stored the
// way the dataset ships them: a single pipe-delimited string such as
// "Action|Comedy". The release year, when known, is embedded in the title
// suffix, e.g. "Toy Story (1995)". The dataset is immutable from the API's
// perspective, so the model carries no bookkeeping columns.
type Movie struct {
	MovieID int64  `gorm:"primaryKey;column:movie_id" json:"movieId" example:"1"`
	Title   string `gorm:"not null;index" json:"title" example:"Toy Story (1995)"`
	Genres  string `gorm:"index" json:"genres" example:"Adventure|Animation|Children|Comedy|Fantasy"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieSimple is the minimal projection used by list and search endpoints.
type MovieSimple struct {
	MovieID int64  `json:"movieId" example:"1"`
	Title   string `json:"title" example:"Toy Story (1995)"`
	Genres  string `json:"genres" example:"Adventure|Animation|Children|Comedy|Fantasy"`
}

// Simple projects the stored row to its list shape.
func (m Movie) Simple() MovieSimple {
	return MovieSimple{
		MovieID: m.MovieID,
		Title:   m.Title,
		Genres:  m.Genres,
	}
}

// MovieDetailed is the single-movie projection: the stored row plus its
// rating aggregates, the tags applied to it and its external-ID link. A
// movie with no ratings has a null average (the count stays 0), and a movie
// with no link row has a null link field.
type MovieDetailed struct {
	Movie
	AverageRating *float64    `json:"average_rating" example:"3.9"`
	RatingCount   int64       `json:"rating_count" example:"215"`
	Tags          []TagSimple `json:"tags"`
	Link          *LinkSimple `json:"link"`
}

// MovieRated pairs a movie with its rating aggregates. Used by advanced
// search and the top-rated / most-rated lists.
type MovieRated struct {
	MovieSimple
	AverageRating *float64 `json:"average_rating" example:"4.2"`
	RatingCount   int64    `json:"rating_count" example:"120"`
}
