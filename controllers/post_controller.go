package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/miniblog/models"
	"github.com/cppla/miniblog/storage"
	"github.com/cppla/miniblog/utils"
	"github.com/cppla/miniblog/views"
)

const (
	storeFailureMessage = "The blog is temporarily unavailable. Please try again later."
	missingFieldMessage = "Title and content are both required."
)

// PostController serves the post pages and forwards writes to the store.
type PostController struct {
	store  storage.PostStore
	tokens utils.TokenSource
	// strict makes create validate like edit does and re-render the form on empty input.
	strict bool
}

// NewPostController creates a new PostController instance.
func NewPostController(store storage.PostStore, tokens utils.TokenSource, strict bool) *PostController {
	return &PostController{store: store, tokens: tokens, strict: strict}
}

// ListPosts renders every post, most recently written first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	posts, err := p.store.ScanAll(ctx.Request.Context())
	if err != nil {
		p.storeFailure(ctx, "scan", "", err)
		return
	}
	SortNewestFirst(posts)
	ctx.Render(http.StatusOK, views.HTML{Page: views.ListPage{Posts: posts}})
}

// NewPostForm renders the empty create form.
func (p *PostController) NewPostForm(ctx *gin.Context) {
	ctx.Render(http.StatusOK, views.HTML{Page: views.FormPage{Action: "/new"}})
}

// CreatePost stores a new post under a fresh id and redirects to the list.
func (p *PostController) CreatePost(ctx *gin.Context) {
	title, content := readPostForm(ctx)
	if p.strict && (title == "" || content == "") {
		p.rejectForm(ctx, views.FormPage{
			Action: "/new",
			Post:   models.Post{Title: title, Content: content},
		})
		return
	}

	post := models.Post{
		ID:         p.tokens.NewID(),
		Title:      title,
		Content:    content,
		ModifiedAt: p.tokens.NewStamp(),
	}
	if err := p.store.Put(ctx.Request.Context(), post); err != nil {
		p.storeFailure(ctx, "put", post.ID, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

// EditPostForm renders the edit form for id. An unknown id yields empty
// fields, and submitting that form creates a post under id.
func (p *PostController) EditPostForm(ctx *gin.Context) {
	id := ctx.Param("id")
	post, err := p.store.Get(ctx.Request.Context(), id)
	if err != nil {
		p.storeFailure(ctx, "get", id, err)
		return
	}
	page := views.FormPage{Editing: true, Action: editPath(id)}
	if post != nil {
		page.Post = *post
	}
	ctx.Render(http.StatusOK, views.HTML{Page: page})
}

// UpdatePost overwrites id when both fields are non-empty; otherwise the
// write is skipped (or, in strict mode, the form is shown again).
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id := ctx.Param("id")
	title, content := readPostForm(ctx)
	post := models.Post{ID: id, Title: title, Content: content}

	if !post.Complete() {
		if p.strict {
			p.rejectForm(ctx, views.FormPage{Editing: true, Action: editPath(id), Post: post})
			return
		}
		utils.Sugar.Debugw("edit skipped, empty field", "post_id", id)
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	post.ModifiedAt = p.tokens.NewStamp()
	if err := p.store.Put(ctx.Request.Context(), post); err != nil {
		p.storeFailure(ctx, "put", id, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

// DeletePost removes id unconditionally; unknown ids are not an error.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := p.store.Delete(ctx.Request.Context(), id); err != nil {
		p.storeFailure(ctx, "delete", id, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

// SortNewestFirst orders posts by descending ModifiedAt using plain string
// comparison. Posts without a stamp compare as "" and end up last.
func SortNewestFirst(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].ModifiedAt > posts[j].ModifiedAt
	})
}

func readPostForm(ctx *gin.Context) (string, string) {
	return strings.TrimSpace(ctx.PostForm("title")), strings.TrimSpace(ctx.PostForm("content"))
}

func editPath(id string) string {
	return "/edit/" + url.PathEscape(id)
}

func (p *PostController) rejectForm(ctx *gin.Context, page views.FormPage) {
	page.Error = missingFieldMessage
	ctx.Render(http.StatusUnprocessableEntity, views.HTML{Page: page})
}

func (p *PostController) storeFailure(ctx *gin.Context, op, id string, err error) {
	// Ginzap logs the attached error once the request completes.
	_ = ctx.Error(fmt.Errorf("post store %s (post_id=%q): %w", op, id, err)).SetMeta(gin.H{"op": op, "post_id": id})
	utils.Error(ctx, http.StatusInternalServerError, storeFailureMessage)
}
