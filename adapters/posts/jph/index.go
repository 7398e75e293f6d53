package jph

import (
	"context"

	"github.com/rendau/apic/adapters/client/httpc"
	"github.com/rendau/apic/adapters/posts"
	"github.com/rendau/apic/apicTypes"
	"github.com/rendau/apic/endpoint"
	"github.com/rendau/apic/pipeline"
)

type St struct {
	p *pipeline.St
}

func New(p *pipeline.St) *St {
	return &St{p: p}
}

func (s *St) List(ctx context.Context, pars *posts.ListParsSt) ([]*posts.PostSt, error) {
	var params apicTypes.Params

	if pars != nil {
		var err error

		params, err = httpc.Object2Params(pars)
		if err != nil {
			return nil, err
		}
	}

	return pipeline.Do[[]*posts.PostSt](ctx, s.p, endpoint.GetPosts, params)
}

func (s *St) Get(ctx context.Context) (*posts.PostSt, error) {
	return pipeline.Do[*posts.PostSt](ctx, s.p, endpoint.GetPost, nil)
}

func (s *St) Comments(ctx context.Context, postId int64) ([]*posts.CommentSt, error) {
	return pipeline.Do[[]*posts.CommentSt](ctx, s.p, endpoint.GetComments, apicTypes.Params{
		"postId": apicTypes.Int(postId),
	})
}

func (s *St) Create(ctx context.Context, obj *posts.PostCUSt) (*posts.PostSt, error) {
	return s.send(ctx, endpoint.CreatePost, obj)
}

func (s *St) Update(ctx context.Context, obj *posts.PostCUSt) (*posts.PostSt, error) {
	return s.send(ctx, endpoint.UpdatePost, obj)
}

func (s *St) Delete(ctx context.Context) error {
	_, err := s.p.Raw(ctx, endpoint.DeletePost, nil)
	return err
}

func (s *St) Users(ctx context.Context) ([]*posts.UserSt, error) {
	return pipeline.Do[[]*posts.UserSt](ctx, s.p, endpoint.GetUsers, nil)
}

func (s *St) send(ctx context.Context, id endpoint.Id, obj *posts.PostCUSt) (*posts.PostSt, error) {
	params, err := httpc.Object2Params(obj)
	if err != nil {
		return nil, err
	}

	return pipeline.Do[*posts.PostSt](ctx, s.p, id, params)
}

var _ posts.Posts = (*St)(nil)
