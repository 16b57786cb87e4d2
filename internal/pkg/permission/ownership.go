package permission

import (
	"Connectly/internal/model"
	"net/http"
)

// Method 操作类别
type Method int

const (
	MethodRead Method = iota
	MethodUpdate
	MethodDelete
)

func (m Method) String() string {
	switch m {
	case MethodRead:
		return "read"
	case MethodUpdate:
		return "update"
	case MethodDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// MethodOf 将 HTTP 方法映射为操作类别，未知方法按写操作处理
func MethodOf(httpMethod string) Method {
	switch httpMethod {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return MethodRead
	case http.MethodDelete:
		return MethodDelete
	default:
		return MethodUpdate
	}
}

// Checker 对象级权限校验，principal 为 0 表示匿名
type Checker[T any] interface {
	Allow(principal uint64, method Method, resource T) bool
}

// PostOwnership 只有作者可以修改、删除帖子
type PostOwnership struct{}

func (PostOwnership) Allow(principal uint64, method Method, post *model.Post) bool {
	if post == nil {
		return method == MethodRead
	}
	return authorWrite(principal, method, post.AuthorID())
}

// CommentOwnership 只有作者可以修改、删除评论
type CommentOwnership struct{}

func (CommentOwnership) Allow(principal uint64, method Method, comment *model.Comment) bool {
	if comment == nil {
		return method == MethodRead
	}
	return authorWrite(principal, method, comment.AuthorID())
}

func authorWrite(principal uint64, method Method, authorID uint64) bool {
	if method == MethodRead {
		return true
	}
	return principal != 0 && principal == authorID
}

var (
	_ Checker[*model.Post]    = PostOwnership{}
	_ Checker[*model.Comment] = CommentOwnership{}
)
