// Package feed defines the community feed post model.
package feed

// Post is one community feed item. Posts are persisted under the global
// (non user-scoped) namespace and shared by all sessions.
type Post struct {
	ID              string   `json:"id"`
	AuthorID        string   `json:"authorId"`
	AuthorName      string   `json:"authorName"`
	AuthorAvatarURL string   `json:"authorAvatarUrl,omitempty"`
	IsAuthorPro     bool     `json:"isAuthorPro"`
	RecipeID        string   `json:"recipeId,omitempty"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	VideoURL        string   `json:"videoUrl,omitempty"`
	Timestamp       int64    `json:"timestamp"`
	Likes           int      `json:"likes"`
	CommentsCount   int      `json:"commentsCount"`
	Tags            []string `json:"tags,omitempty"`
}
