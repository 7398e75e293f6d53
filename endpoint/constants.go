package endpoint

import (
	"net/http"
	"strconv"
)

const DefaultBaseUrl = "https://jsonplaceholder.typicode.com"

// Id identifies one supported operation.
type Id int

const (
	GetPosts Id = iota
	GetPost
	GetComments
	CreatePost
	UpdatePost
	DeletePost
	GetUsers

	idCount
)

var idNames = map[Id]string{
	GetPosts:    "get_posts",
	GetPost:     "get_post",
	GetComments: "get_comments",
	CreatePost:  "create_post",
	UpdatePost:  "update_post",
	DeletePost:  "delete_post",
	GetUsers:    "get_users",
}

func (id Id) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "endpoint(" + strconv.Itoa(int(id)) + ")"
}

// Ids returns every Id in declaration order.
func Ids() []Id {
	res := make([]Id, 0, idCount)
	for id := Id(0); id < idCount; id++ {
		res = append(res, id)
	}
	return res
}

type Encoding int

const (
	EncodingQuery Encoding = iota + 1
	EncodingJson
)

func (e Encoding) String() string {
	switch e {
	case EncodingQuery:
		return "query"
	case EncodingJson:
		return "json"
	}
	return "unknown"
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

var jsonHeaders = http.Header{
	"Content-Type": {"application/json; charset=UTF-8"},
}

var defaultDefs = map[Id]DefSt{
	GetPosts:    {Suffix: "/posts", Method: http.MethodGet, Encoding: EncodingQuery},
	GetPost:     {Suffix: "/posts/1", Method: http.MethodGet, Encoding: EncodingQuery},
	GetComments: {Suffix: "/comments", Method: http.MethodGet, Encoding: EncodingQuery},
	CreatePost:  {Suffix: "/posts", Method: http.MethodPost, Encoding: EncodingJson, Headers: jsonHeaders},
	UpdatePost:  {Suffix: "/posts/1", Method: http.MethodPut, Encoding: EncodingJson, Headers: jsonHeaders},
	DeletePost:  {Suffix: "/posts/1", Method: http.MethodDelete, Encoding: EncodingQuery},
	GetUsers:    {Suffix: "/users", Method: http.MethodGet, Encoding: EncodingQuery},
}
