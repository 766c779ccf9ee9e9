package handlers

import (
	"reflect"
	"strings"

	"ceili/internal/middleware"
	"ceili/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError 校验失败时逐字段返回给前端的错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func init() {
	// 校验错误按 json 字段名返回,方便前端逐字段提示
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// CurrentUser 取出 LoadUser 放入上下文的用户,未登录返回 nil
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// JSONError 统一的错误响应,不向调用方泄露内部细节
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// fieldErrors 把 validator 的错误展开成 (field, message) 列表
func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	errs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, FieldError{
			Field:   fe.Field(),
			Message: "failed on '" + fe.Tag() + "' validation",
		})
	}
	return errs
}
