package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrUserNotFound     = errors.New("用户不存在")
	ErrProducerNotFound = errors.New("商家不存在")
	ErrPostNotFound     = errors.New("帖子不存在")
	ErrCommentNotFound  = errors.New("评论不存在")
	ErrInterestSelf     = errors.New("不能对自己的店铺发起意向")
	ErrInterestExist    = errors.New("已发起过意向")
	ErrBlockSelf        = errors.New("不能拉黑自己")
	ErrBlockExist       = errors.New("用户已被拉黑")
	ErrBlockNotFound    = errors.New("拉黑关系不存在")
	ErrReportExist      = errors.New("已举报，请等待处理")
	ErrReportTarget     = errors.New("举报对象类型不支持")
	UnauthorizedError   = errors.New("权限不足")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrUserNotFound:     NotFound,
	ErrProducerNotFound: NotFound,
	ErrPostNotFound:     NotFound,
	ErrCommentNotFound:  NotFound,
	ErrInterestSelf:     BadRequest,
	ErrInterestExist:    BadRequest,
	ErrBlockSelf:        BadRequest,
	ErrBlockExist:       BadRequest,
	ErrBlockNotFound:    NotFound,
	ErrReportExist:      BadRequest,
	ErrReportTarget:     BadRequest,
	UnauthorizedError:   Unauthorized,
	UnExpectedError:     InternalServerError,
}
