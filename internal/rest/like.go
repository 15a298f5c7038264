package rest

import (
	"context"
	"net/http"

	"github.com/lostblog/blog-backend/domain"
	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

type likeOp func(ctx context.Context, subjectID, userID int64) (domain.LikeInfo, error)

// toggle factors the shared shape of every like/unlike endpoint: resolve
// the caller, resolve the subject ID, run the operation, return the info.
func (h *LikeHandler) toggle(c *gin.Context, op likeOp) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	subjectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	info, err := op(c.Request.Context(), subjectID, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *LikeHandler) LikePost(c *gin.Context) {
	h.toggle(c, h.Service.LikePost)
}

func (h *LikeHandler) UnlikePost(c *gin.Context) {
	h.toggle(c, h.Service.UnlikePost)
}

func (h *LikeHandler) LikeComment(c *gin.Context) {
	h.toggle(c, h.Service.LikeComment)
}

func (h *LikeHandler) UnlikeComment(c *gin.Context) {
	h.toggle(c, h.Service.UnlikeComment)
}

// PostLikeInfo reports the like count plus whether the viewer liked it.
func (h *LikeHandler) PostLikeInfo(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	info, err := h.Service.PostLikeInfo(c.Request.Context(), postID, viewerID(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *LikeHandler) CommentLikeInfo(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	info, err := h.Service.CommentLikeInfo(c.Request.Context(), commentID, viewerID(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}
