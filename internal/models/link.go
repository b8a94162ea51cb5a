package models

// Link maps a movie to its external identifiers. One row per movie; the
// TMDB id is missing for some entries of the dataset, hence the pointer.
type Link struct {
	MovieID int64   `gorm:"primaryKey;column:movie_id" json:"movieId" example:"1"`
	ImdbID  string  `gorm:"not null;index;column:imdb_id" json:"imdbId" example:"0114709"`
	TmdbID  *string `gorm:"column:tmdb_id" json:"tmdbId" example:"862"`
}

func (Link) TableName() string {
	return "links"
}

// LinkSimple is the projection returned alongside a movie: just the
// external identifiers.
type LinkSimple struct {
	ImdbID string  `json:"imdbId" example:"0114709"`
	TmdbID *string `json:"tmdbId" example:"862"`
}

// Simple projects the stored row to its embedded shape.
func (l Link) Simple() LinkSimple {
	return LinkSimple{
		ImdbID: l.ImdbID,
		TmdbID: l.TmdbID,
	}
}
