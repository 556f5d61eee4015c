package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/service"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/pkg/response"
)

// bindErrorMessage 将绑定/校验错误转为单条可读文案。
// validator 的逐字段错误合并为一条消息，其他绑定错误返回笼统提示。
func bindErrorMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "请求体格式错误"
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s 为必填项", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s 超出最大长度 %s", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s 必须是 %s 之一", fe.Field(), fe.Param()))
		case "timeslot":
			msgs = append(msgs, "timeSlot 必须是营业时间（08:30-16:30）内的 30 分钟区间")
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s 必须是合法 URL", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s 校验失败", fe.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

// handleValidationError 服务层校验错误统一转 400；返回是否已处理
func handleValidationError(c *gin.Context, err error) bool {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		response.BadRequest(c, 10001, ve.Error())
		return true
	}
	return false
}
