package cli

import (
	"context"
	"fmt"
	"os"
)

// AddBlog prompts for blog data and registers it.
func (a *App) AddBlog(ctx context.Context) error {
	id, err := getInt64(a.reader, "Blog ID", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	name, err := getSimpleText(a.reader, "Blog name", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "Blog URL", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Blog email", os.Stdout)
	if err != nil {
		return err
	}

	blog, err := a.controller.CreateBlog(ctx, id, name, url, email)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn("Added: " + formatBlog(blog))
	return nil
}

// SearchBlog looks a blog up by id and prints it.
func (a *App) SearchBlog(ctx context.Context) error {
	id, err := getInt64(a.reader, "Blog ID", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	blog, err := a.controller.SearchBlog(ctx, id)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn(formatBlog(blog))
	return nil
}

// FindBlogs lists blogs whose name contains the entered string.
func (a *App) FindBlogs(ctx context.Context) error {
	needle, err := getSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}

	found, err := a.controller.RetrieveBlogs(ctx, needle)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	if len(found) == 0 {
		printlnFn(fmt.Sprintf("No blogs found with name: %s", needle))
		return nil
	}
	for _, b := range found {
		printlnFn(formatBlog(b))
	}
	return nil
}

// UpdateBlog prompts for new blog data; empty answers keep the old values,
// a zero id keeps the old id.
func (a *App) UpdateBlog(ctx context.Context) error {
	searchID, err := getInt64(a.reader, "Blog ID to change", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	blog, err := a.controller.SearchBlog(ctx, searchID)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn(formatBlog(blog))
	printlnFn("Enter new values, or an empty line (0 for the ID) to keep the old ones.")

	newID, err := getInt64(a.reader, "New blog ID", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if newID == 0 {
		newID = searchID
	}
	name, err := getSimpleText(a.reader, "Blog name", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "Blog URL", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Blog email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.controller.UpdateBlog(ctx, searchID, newID, name, url, email); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn("Blog data changed.")
	return nil
}

// DeleteBlog removes a blog after confirmation.
func (a *App) DeleteBlog(ctx context.Context) error {
	id, err := getInt64(a.reader, "Blog ID to remove", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	blog, err := a.controller.SearchBlog(ctx, id)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Remove blog %s and all its posts (y/n)?", blog.Name), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.controller.DeleteBlog(ctx, id); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn("Blog removed.")
	return nil
}

// ListBlogs prints the whole collection.
func (a *App) ListBlogs(ctx context.Context) error {
	blogs, err := a.controller.ListBlogs(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	if len(blogs) == 0 {
		printlnFn("No blogs registered.")
		return nil
	}
	for _, b := range blogs {
		printlnFn(formatBlog(b))
	}
	return nil
}

// SelectBlog makes a blog current so its posts can be edited.
func (a *App) SelectBlog(ctx context.Context) error {
	id, err := getInt64(a.reader, "Blog ID to edit", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.controller.SetCurrentBlog(ctx, id); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn(fmt.Sprintf("Editing blog %d.", id))
	return nil
}

// UnselectBlog finishes editing the current blog.
func (a *App) UnselectBlog(ctx context.Context) error {
	if err := a.controller.UnsetCurrentBlog(ctx); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn("Editing finished.")
	return nil
}

// ShowCurrent prints the currently selected blog.
func (a *App) ShowCurrent(ctx context.Context) error {
	blog, err := a.controller.GetCurrentBlog(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	if blog == nil {
		printlnFn("No blog selected.")
		return nil
	}
	printlnFn(formatBlog(blog))
	return nil
}
