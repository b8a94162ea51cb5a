package routes

import (
	"movielens-api/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	movieHandler *handlers.MovieHandler,
	ratingHandler *handlers.RatingHandler,
	tagHandler *handlers.TagHandler,
	linkHandler *handlers.LinkHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	// Movie routes - catalog, search and rankings
	movies := app.Group("/movies")
	{
		movies.Get("/", movieHandler.ListMovies)
		movies.Get("/search/by-year", movieHandler.SearchByYear)
		movies.Get("/search/advanced", movieHandler.SearchMovies)
		movies.Get("/top/rated", movieHandler.TopRated)
		movies.Get("/top/popular", movieHandler.MostRated)
		movies.Get("/:id", movieHandler.GetMovie)
		movies.Get("/:id/similar", movieHandler.SimilarMovies)
		movies.Get("/:id/ratings", ratingHandler.MovieRatings)
		movies.Get("/:id/ratings/average", ratingHandler.MovieAverageRating)
		movies.Get("/:id/tags", tagHandler.MovieTags)
		movies.Get("/:id/links", linkHandler.GetLink)
	}

	// Rating routes
	ratings := app.Group("/ratings")
	{
		ratings.Get("/", ratingHandler.ListRatings)
		ratings.Get("/:userId/:movieId", ratingHandler.GetRating)
	}

	// User routes - per-user history and recommendations
	users := app.Group("/users")
	{
		users.Get("/:id/ratings", ratingHandler.UserRatings)
		users.Get("/:id/recommendations", movieHandler.Recommendations)
		users.Get("/:id/tags", tagHandler.UserTags)
	}

	// Tag routes
	tags := app.Group("/tags")
	{
		tags.Get("/", tagHandler.ListTags)
		tags.Get("/search", movieHandler.SearchByTag)
		tags.Get("/popular", tagHandler.PopularTags)
		tags.Get("/:userId/:movieId/:tagText", tagHandler.GetTag)
	}

	// Link routes
	links := app.Group("/links")
	{
		links.Get("/", linkHandler.ListLinks)
		links.Get("/imdb/:imdbId", movieHandler.GetMovieByImdbID)
	}

	// Analytics routes
	app.Get("/analytics", analyticsHandler.Statistics)
}
