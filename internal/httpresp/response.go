package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform success shape: {message, data}.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Message: message, Data: data})
}

func List[T any](c *gin.Context, message string, data []T) {
	c.JSON(http.StatusOK, Envelope{
		Message: message,
		Data: ListResponse[T]{
			Data:  data,
			Total: len(data),
		},
	})
}
