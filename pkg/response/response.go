package response

import (
	"github.com/gin-gonic/gin"
)

// MsgBody is the auth API envelope: {"msg": "..."} plus optional field errors.
type MsgBody struct {
	Msg    string `json:"msg"`
	Errors any    `json:"errors,omitempty"`
}

// MessageBody is the employee API envelope: {"message": "..."}.
type MessageBody struct {
	Message string `json:"message"`
}

type DataBody[T any] struct {
	Data T `json:"data"`
}

func Msg(ctx *gin.Context, status int, msg string, errs any) {
	ctx.JSON(status, MsgBody{Msg: msg, Errors: errs})
}

// AbortMsg writes a msg body and stops the handler chain.
func AbortMsg(ctx *gin.Context, status int, msg string) {
	ctx.AbortWithStatusJSON(status, MsgBody{Msg: msg})
}

func Message(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, MessageBody{Message: msg})
}

func Data[T any](ctx *gin.Context, status int, data T) {
	ctx.JSON(status, DataBody[T]{Data: data})
}
