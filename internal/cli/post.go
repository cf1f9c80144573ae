package cli

import (
	"context"
	"fmt"
	"os"
)

// AddPost adds a post to the current blog.
func (a *App) AddPost(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Post title", os.Stdout)
	if err != nil {
		return err
	}
	text, err := getMultiline(a.reader, "Post text", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.controller.CreatePost(ctx, title, text)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn(fmt.Sprintf("Post #%d added.", post.Code))
	return nil
}

// FindPosts lists posts of the current blog matching the entered text.
func (a *App) FindPosts(ctx context.Context) error {
	needle, err := getSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}

	found, err := a.controller.RetrievePosts(ctx, needle)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	if len(found) == 0 {
		printlnFn(fmt.Sprintf("No posts found for: %s", needle))
		return nil
	}
	for _, p := range found {
		printlnFn(formatPost(p))
	}
	return nil
}

// EditPost replaces the title and text of a post.
func (a *App) EditPost(ctx context.Context) error {
	code, err := getInt64(a.reader, "Post number", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	post, err := a.controller.SearchPost(ctx, code)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn(formatPost(post))

	title, err := getSimpleText(a.reader, "New title", os.Stdout)
	if err != nil {
		return err
	}
	text, err := getMultiline(a.reader, "New text", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.controller.UpdatePost(ctx, code, title, text); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn("Post changed.")
	return nil
}

// RemovePost deletes a post after confirmation.
func (a *App) RemovePost(ctx context.Context) error {
	code, err := getInt64(a.reader, "Post number", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	post, err := a.controller.SearchPost(ctx, code)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Remove post #%d (y/n)?", post.Code), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.controller.DeletePost(ctx, code); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn("Post removed.")
	return nil
}

// ListPosts prints the current blog's posts, most recent first.
func (a *App) ListPosts(ctx context.Context) error {
	posts, err := a.controller.ListPosts(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	if len(posts) == 0 {
		printlnFn("Blog is empty.")
		return nil
	}
	for _, p := range posts {
		printlnFn(formatPost(p))
	}
	return nil
}
