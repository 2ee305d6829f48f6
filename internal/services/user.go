package services

import (
	"time"

	"shiftHub/internal/ctx"
	"shiftHub/internal/models"
	"shiftHub/internal/types"
	"shiftHub/pkg/tools"
)

type userService struct {
	ctx *ctx.Context
}

type InterUserService interface {
	List(req interface{}) (interface{}, interface{})
	Get(req interface{}) (interface{}, interface{})
	Login(req interface{}) (interface{}, interface{})
	Register(req interface{}) (interface{}, interface{})
	Update(req interface{}) (interface{}, interface{})
	Delete(req interface{}) (interface{}, interface{})
}

func newInterUserService(ctx *ctx.Context) InterUserService {
	return &userService{
		ctx: ctx,
	}
}

func (us userService) List(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestUserQuery)

	data, err := us.ctx.DB.User().List(r.TenantId, r.Query)
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (us userService) Get(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestUserQuery)

	data, exist, err := us.ctx.DB.User().Get(r.UserId, r.UserName)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityUser, "用户不存在")
	}

	return data, nil
}

func (us userService) Login(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestUserLogin)

	data, exist, err := us.ctx.DB.User().Get("", r.UserName)
	if err != nil {
		return nil, err
	}
	if !exist || data.Password != tools.GenerateHashPassword(r.Password) {
		return nil, models.NewNotFoundError(models.EntityUser, "用户名或密码错误")
	}

	token, err := tools.GenerateToken(data.UserId, data.UserName)
	if err != nil {
		return nil, err
	}

	return types.ResponseUserLogin{
		Token:    token,
		UserId:   data.UserId,
		UserName: data.UserName,
	}, nil
}

func (us userService) Register(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestUserRegister)

	_, exist, err := us.ctx.DB.User().Get("", r.UserName)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, models.NewConflictError("用户名已存在")
	}

	err = us.ctx.DB.User().Create(models.Member{
		UserId:   tools.RandId(),
		UserName: r.UserName,
		RealName: r.RealName,
		Email:    r.Email,
		Mobile:   r.Mobile,
		Password: tools.GenerateHashPassword(r.Password),
		Manager:  models.ManagerNone(),
		CreateBy: r.CreateBy,
		CreateAt: time.Now().Unix(),
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (us userService) Update(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestUserUpdate)

	data, exist, err := us.ctx.DB.User().Get(r.UserId, "")
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityUser, "用户不存在")
	}

	if r.UserName != "" {
		data.UserName = r.UserName
	}
	if r.RealName != "" {
		data.RealName = r.RealName
	}
	if r.Email != "" {
		data.Email = r.Email
	}
	if r.Mobile != "" {
		data.Mobile = r.Mobile
	}

	err = us.ctx.DB.User().Update(data)
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (us userService) Delete(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestUserQuery)

	_, exist, err := us.ctx.DB.User().Get(r.UserId, "")
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityUser, "用户不存在")
	}

	err = us.ctx.DB.User().Delete(r.UserId)
	if err != nil {
		return nil, err
	}

	return nil, nil
}
