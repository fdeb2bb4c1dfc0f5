package handler

import (
	"net/http"

	"github.com/jeevanantham/portfolio/backend/internal/content"
)

// BlogHandler serves the in-memory blog content as JSON.
type BlogHandler struct{}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler() *BlogHandler {
	return &BlogHandler{}
}

// blogListResponse is the JSON response for GET /api/blog.
type blogListResponse struct {
	Posts []content.BlogPost `json:"posts"`
}

// blogPostResponse is the JSON response for GET /api/blog/{slug}.
// Prev and Next are the neighboring posts in newest-first order, without bodies.
type blogPostResponse struct {
	Post content.BlogPost  `json:"post"`
	Prev *content.BlogPost `json:"prev,omitempty"`
	Next *content.BlogPost `json:"next,omitempty"`
}

// List handles GET /api/blog. Bodies are omitted from the listing.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts := content.Posts()
	summaries := make([]content.BlogPost, len(posts))
	for i, p := range posts {
		p.Content = ""
		summaries[i] = p
	}
	writeJSON(w, http.StatusOK, blogListResponse{Posts: summaries})
}

// Get handles GET /api/blog/{slug}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, ok := content.PostBySlug(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	prev, next := content.AdjacentPosts(slug)
	resp := blogPostResponse{Post: post}
	if prev != nil {
		p := *prev
		p.Content = ""
		resp.Prev = &p
	}
	if next != nil {
		n := *next
		n.Content = ""
		resp.Next = &n
	}
	writeJSON(w, http.StatusOK, resp)
}
