package response

import (
	"Marketplace/internal/api/dto"
	"Marketplace/internal/service"
	"errors"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// 业务码，HTTP 状态码固定 200
const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

const msgSuccess = "success"

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: msgSuccess,
		Data:    data,
	})
}

func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
	})
}

// Error 按错误类型映射业务码，未登记的错误记日志后按 500 返回
func Error(c *gin.Context, err error) {
	code, msg, known := resolve(err)
	if !known {
		log.ErrorContext(c.Request.Context(), "unhandled error", "path", c.FullPath(), "err", err)
	}
	Fail(c, code, msg)
}

// resolve 返回业务码、提示信息以及错误是否已登记
func resolve(err error) (int, string, bool) {
	var (
		ve        validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &ve):
		return BadRequest, service.ErrParamInvalid.Error(), true
	case errors.As(err, &typeErr), errors.As(err, &syntaxErr), errors.Is(err, io.EOF):
		return BadRequest, "Json错误", true
	}

	for known, code := range service.ErrorMap {
		if errors.Is(err, known) {
			return code, known.Error(), true
		}
	}
	return InternalServerError, service.UnExpectedError.Error(), false
}
