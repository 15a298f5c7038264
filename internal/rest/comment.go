package rest

import (
	"net/http"

	"github.com/lostblog/blog-backend/domain"
	"github.com/lostblog/blog-backend/internal/rest/request"
	"github.com/lostblog/blog-backend/internal/rest/response"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// CreateComment creates a top-level comment on a post.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Create(ctx, postID, uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(comment))
}

// CreateReply creates a reply under an existing comment.
func (h *CommentHandler) CreateReply(c *gin.Context) {
	var req request.Reply
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	parentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	reply, err := h.Service.CreateReply(ctx, parentID, uid, req.Content, req.ReplyToUserID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(reply))
}

// UpdateComment replaces a comment's body; author only.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Update(ctx, commentID, uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

// DeleteComment removes a comment and its whole subtree.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, commentID, uid); err != nil {
		if err == domain.ErrForbidden {
			c.JSON(http.StatusForbidden, ResponseError{Message: "You do not have permission to delete this comment"})
			return
		}
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// FetchCommentsByPost lists a post's top-level comments with aggregates.
func (h *CommentHandler) FetchCommentsByPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	ctx := c.Request.Context()
	res, err := h.Service.FetchByPost(ctx, postID, page, pageSize, viewerID(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentPageFromDomain(res))
}

// FetchReplies lists the direct children of a comment.
func (h *CommentHandler) FetchReplies(c *gin.Context) {
	parentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	ctx := c.Request.Context()
	res, err := h.Service.FetchReplies(ctx, parentID, page, pageSize, viewerID(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentPageFromDomain(res))
}

// FetchMyComments lists the caller's comments across all posts.
func (h *CommentHandler) FetchMyComments(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	page, pageSize := pageParams(c)

	ctx := c.Request.Context()
	res, err := h.Service.FetchByAuthor(ctx, uid, page, pageSize)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentPageFromDomain(res))
}
