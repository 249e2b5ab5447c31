package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 报错时使用前端可见的参数名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// ValidateDTO 只返回第一条校验失败的字段
func ValidateDTO(dto any) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		first := vErrs[0]
		return fmt.Errorf("字段 [%s] 校验失败，规则 [%s]", first.Field(), first.Tag())
	}
	return err
}
