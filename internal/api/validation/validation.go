// Package validation 注册 Gin 绑定层的自定义校验规则。
package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/calendar"
)

// Register 向 Gin 的 validator 引擎注册自定义规则。幂等，可重复调用。
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// timeslot: 营业时间内的 30 分钟区间，格式 HH:MM-HH:MM
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return calendar.ValidateTimeSlot(fl.Field().String()) == nil
	})
}
