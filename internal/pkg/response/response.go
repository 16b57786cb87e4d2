package response

import (
	"Connectly/internal/api/dto"
	"Connectly/internal/pkg/factory"
	"Connectly/internal/pkg/util"
	"Connectly/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 200 返回
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 返回
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 返回
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Message 提示信息返回
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageDTO{Message: message})
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorDTO{Error: message})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var fieldErr *service.ValidationError
	if errors.As(err, &fieldErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, fieldErr.Fields)
		return
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, util.FieldErrors(ve))
		return
	}

	var argErr *factory.InvalidArgumentError
	if errors.As(err, &argErr) {
		Fail(c, http.StatusBadRequest, argErr.Error())
		return
	}

	if isMalformedJSON(err) {
		Fail(c, http.StatusBadRequest, "JSON parse error.")
		return
	}

	for sentinel, status := range service.ErrorMap {
		if errors.Is(err, sentinel) {
			Fail(c, status, sentinel.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "unexpected error", "path", c.FullPath(), "err", err)
	Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
}

func isMalformedJSON(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var stdSyntaxErr *stdjson.SyntaxError
	var stdTypeErr *stdjson.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.As(err, &stdSyntaxErr) || errors.As(err, &stdTypeErr)
}
