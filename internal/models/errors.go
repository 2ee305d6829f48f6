package models

import (
	"errors"
	"fmt"
)

// 业务错误类型，全部在写库前校验产生，不做自动重试
const (
	ErrKindInvalidSchedule    = "InvalidSchedule"
	ErrKindInvalidManager     = "InvalidManager"
	ErrKindNotFound           = "NotFound"
	ErrKindPreconditionFailed = "PreconditionFailed"
	ErrKindConflict           = "Conflict"
	ErrKindCycleDetected      = "CycleDetected"
	ErrKindSelfReference      = "SelfReference"
	ErrKindDepthLimitExceeded = "DepthLimitExceeded"
)

// NotFound 错误的实体名
const (
	EntityUser          = "User"
	EntityGroup         = "Group"
	EntityDepartment    = "Department"
	EntityAssignment    = "Assignment"
	EntityNoAssignments = "NoAssignments"
)

// AppError 分配引擎的业务错误
// Kind 用于上层映射响应码，Entity 仅在 NotFound 类错误下有值
type AppError struct {
	Kind   string `json:"kind"`
	Entity string `json:"entity,omitempty"`
	Msg    string `json:"msg"`
}

func (e *AppError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s(%s): %s", e.Kind, e.Entity, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func NewInvalidScheduleError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrKindInvalidSchedule, Msg: fmt.Sprintf(format, args...)}
}

func NewInvalidManagerError(msg string) *AppError {
	return &AppError{Kind: ErrKindInvalidManager, Msg: msg}
}

func NewNotFoundError(entity, msg string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Entity: entity, Msg: msg}
}

func NewPreconditionError(msg string) *AppError {
	return &AppError{Kind: ErrKindPreconditionFailed, Msg: msg}
}

func NewConflictError(msg string) *AppError {
	return &AppError{Kind: ErrKindConflict, Msg: msg}
}

func NewCycleError(msg string) *AppError {
	return &AppError{Kind: ErrKindCycleDetected, Msg: msg}
}

func NewSelfReferenceError(msg string) *AppError {
	return &AppError{Kind: ErrKindSelfReference, Msg: msg}
}

func NewDepthLimitError(msg string) *AppError {
	return &AppError{Kind: ErrKindDepthLimitExceeded, Msg: msg}
}

// KindOf 提取业务错误类型，非业务错误返回空串
func KindOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
