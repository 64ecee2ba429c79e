package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"petbhai-backend/internal/domain"
	"petbhai-backend/internal/middleware"
	"petbhai-backend/internal/repository"
)

// PostHandler is the community feed: posts with one level of comment
// nesting and per-user likes.
type PostHandler struct {
	posts repository.PostRepository
}

func NewPostHandler(posts repository.PostRepository) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

type createPostRequest struct {
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	post := &domain.Post{
		Author:    req.Author,
		Content:   req.Content,
		Image:     req.Image,
		CreatedAt: time.Now().UTC(),
		Comments:  []domain.Comment{},
	}
	if err := h.posts.Insert(c.Request.Context(), post); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

type commentRequest struct {
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *PostHandler) AddComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	post.Comments = append(post.Comments, domain.Comment{
		ID:        nextCommentID(post),
		Author:    req.Author,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	})
	if err := h.posts.Update(c.Request.Context(), post); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) AddReply(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	commentID, err := strconv.Atoi(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid comment id"})
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	found := false
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			post.Comments[i].Replies = append(post.Comments[i].Replies, domain.Comment{
				ID:        nextCommentID(post),
				Author:    req.Author,
				Content:   req.Content,
				CreatedAt: time.Now().UTC(),
			})
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "comment not found"})
		return
	}

	if err := h.posts.Update(c.Request.Context(), post); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	post.ToggleLike(userID)
	if err := h.posts.Update(c.Request.Context(), post); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": post.Likes, "liked": post.LikedByUser(userID)})
}

// nextCommentID numbers comments and replies within one post.
func nextCommentID(post *domain.Post) int {
	max := 0
	for _, comment := range post.Comments {
		if comment.ID > max {
			max = comment.ID
		}
		for _, reply := range comment.Replies {
			if reply.ID > max {
				max = reply.ID
			}
		}
	}
	return max + 1
}
