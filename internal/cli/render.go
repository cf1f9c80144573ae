package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

// errorMessage maps the controller's failure taxonomy to user-facing text.
// Message wording lives here, not in the core.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrAccessDenied):
		return "Must login first."
	case errors.Is(err, common.ErrAlreadyAuthenticated):
		return "Already logged in."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Wrong username or password."
	case errors.Is(err, common.ErrNotAuthenticated):
		return "Not logged in."
	case errors.Is(err, common.ErrNoCurrentBlog):
		return "Select a blog first."
	case errors.Is(err, common.ErrConflict):
		return "A record with this id is already registered."
	case errors.Is(err, common.ErrNotFound):
		return "No record with this id."
	case errors.Is(err, common.ErrCurrentBlogLocked):
		return "This blog is selected for editing. Unselect it first."
	default:
		return "Error: " + err.Error()
	}
}

func formatBlog(b *models.Blog) string {
	return fmt.Sprintf("Blog %d: %s (%s, %s)", b.ID, b.Name, b.URL, b.Email)
}

func formatPost(p *models.Post) string {
	return fmt.Sprintf("Post #%d: %s\n%s\n(created %s, changed %s)",
		p.Code, p.Title, p.Text,
		p.CreatedAt.Format("2006-01-02 15:04"),
		p.UpdatedAt.Format("2006-01-02 15:04"))
}
