package consts

const (
	RoleUser     = "user"
	RoleProducer = "producer"
	RoleAdmin    = "admin"
)

const (
	RecentFollowersLimit = 10
	RecentCommentsLimit  = 20
)

// RolesKey gin.Context 中保存角色列表的 Key
const RolesKey = "roles"
