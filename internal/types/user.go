package types

// RequestUserQuery 查询用户
type RequestUserQuery struct {
	TenantId string `json:"-" form:"-"`
	UserId   string `json:"userid" form:"userid"`
	UserName string `json:"username" form:"username"`
	Query    string `json:"query" form:"query"`
}

// RequestUserRegister 注册用户
type RequestUserRegister struct {
	UserId   string `json:"userid"`
	UserName string `json:"username" binding:"required"`
	RealName string `json:"realName"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" binding:"required"`
	CreateBy string `json:"-"`
}

// RequestUserUpdate 更新用户
type RequestUserUpdate struct {
	UserId   string `json:"userid" binding:"required"`
	UserName string `json:"username"`
	RealName string `json:"realName"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}

// RequestUserLogin 用户登录
type RequestUserLogin struct {
	UserName string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResponseUserLogin 登录结果
type ResponseUserLogin struct {
	Token    string `json:"token"`
	UserId   string `json:"userid"`
	UserName string `json:"username"`
}
