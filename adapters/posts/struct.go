package posts

type PostSt struct {
	Id     int64  `json:"id"`
	UserId int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type ListParsSt struct {
	UserId *int64 `form:"userId"`
}

type PostCUSt struct {
	Id     *int64  `json:"id" form:"id"`
	UserId *int64  `json:"userId" form:"userId"`
	Title  *string `json:"title" form:"title"`
	Body   *string `json:"body" form:"body"`
}

type CommentSt struct {
	Id     int64  `json:"id"`
	PostId int64  `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

type UserSt struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
