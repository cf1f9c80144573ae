package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. The real
// App satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddBlog(ctx context.Context) error
	SearchBlog(ctx context.Context) error
	FindBlogs(ctx context.Context) error
	UpdateBlog(ctx context.Context) error
	DeleteBlog(ctx context.Context) error
	ListBlogs(ctx context.Context) error
	SelectBlog(ctx context.Context) error
	UnselectBlog(ctx context.Context) error
	ShowCurrent(ctx context.Context) error
	AddPost(ctx context.Context) error
	FindPosts(ctx context.Context) error
	EditPost(ctx context.Context) error
	RemovePost(ctx context.Context) error
	ListPosts(ctx context.Context) error
}

// runREPL reads a line, takes the first token as the command and dispatches
// to a. Unknown commands are reported back. The loop exits on scanner EOF
// or on "exit"/"quit". Handler errors are rendered by the handlers
// themselves, so they are ignored here to keep the loop resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("blogkeeper> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Blogs: add, search, find, update, del, (l)ist, select, unselect, current")
				printlnFn("Posts (selected blog): addpost, posts, findpost, editpost, delpost")
				printlnFn("Other: logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.AddBlog(ctx)

		case "search":
			_ = a.SearchBlog(ctx)

		case "find":
			_ = a.FindBlogs(ctx)

		case "update":
			_ = a.UpdateBlog(ctx)

		case "del":
			_ = a.DeleteBlog(ctx)

		case "l", "list":
			_ = a.ListBlogs(ctx)

		case "select":
			_ = a.SelectBlog(ctx)

		case "unselect":
			_ = a.UnselectBlog(ctx)

		case "current":
			_ = a.ShowCurrent(ctx)

		case "addpost":
			_ = a.AddPost(ctx)

		case "posts":
			_ = a.ListPosts(ctx)

		case "findpost":
			_ = a.FindPosts(ctx)

		case "editpost":
			_ = a.EditPost(ctx)

		case "delpost":
			_ = a.RemovePost(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (type 'help')", parts[0]))
		}
	}
}
