package httpserver

import "github.com/gin-gonic/gin"

type errorResponse struct {
	Error string `json:"error"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}
