package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyTooLargeMessage texto do 413
const BodyTooLargeMessage = "Requisição excede o tamanho máximo permitido."

// ErrorBody corpo de erro: sempre {"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody corpo de confirmação: {"message": "..."}
type MessageBody struct {
	Message string `json:"message"`
}

// ── sucesso ──

// OK 200 com o payload cru (listas e objetos sem envelope)
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 com o payload cru
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 {"message": msg}
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

// CreatedMessage 201 {"message": msg}
func CreatedMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusCreated, MessageBody{Message: msg})
}

// ── erro ──

// Error resposta de erro genérica
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// RequestTooLarge 413
func RequestTooLarge(c *gin.Context) {
	Error(c, http.StatusRequestEntityTooLarge, BodyTooLargeMessage)
}

// InternalError 500. message vazio usa o texto padrão.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Erro interno do servidor."
	}
	Error(c, http.StatusInternalServerError, message)
}
