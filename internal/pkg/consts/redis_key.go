package consts

const (
	TokenBlacklistKey = "token:blacklist:"
	PostTypeCountKey  = "post:type:count"
)
