package posts

import (
	"context"
)

// Posts is a client for the jsonplaceholder posts API.
//
// The endpoint table addresses a single fixed post (/posts/1): Get, Update
// and Delete always act on that post and take no id.
type Posts interface {
	List(ctx context.Context, pars *ListParsSt) ([]*PostSt, error)
	// Get returns post 1.
	Get(ctx context.Context) (*PostSt, error)
	Comments(ctx context.Context, postId int64) ([]*CommentSt, error)
	Create(ctx context.Context, obj *PostCUSt) (*PostSt, error)
	// Update replaces post 1.
	Update(ctx context.Context, obj *PostCUSt) (*PostSt, error)
	// Delete removes post 1.
	Delete(ctx context.Context) error
	Users(ctx context.Context) ([]*UserSt, error)
}
