package request

// Comment carries the body for creating or updating a comment.
type Comment struct {
	Content string `json:"content" validate:"required,min=1,max=3000"`
}

// Reply additionally names the user being addressed; independent of the
// parent comment and optional.
type Reply struct {
	Content       string `json:"content" validate:"required,min=1,max=3000"`
	ReplyToUserID int64  `json:"reply_to_user_id"`
}
