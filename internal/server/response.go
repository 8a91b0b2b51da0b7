package server

import "github.com/gin-gonic/gin"

// Response is the uniform envelope every endpoint returns; the status
// code inside mirrors the transport status.
type Response struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
	StatusCode int    `json:"status_code"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{
		Success:    status < 400,
		Message:    message,
		Data:       data,
		StatusCode: status,
	})
}
