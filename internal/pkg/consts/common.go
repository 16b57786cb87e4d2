package consts

// Context 中的用户身份
const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
	TokenKey    = "token"
)

// 帖子生命周期事件
const (
	PostEventCreated = "post.created"
	PostEventUpdated = "post.updated"
	PostEventDeleted = "post.deleted"
)
