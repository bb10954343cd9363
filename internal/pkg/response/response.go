package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same flat envelope:
// {"success": bool, "message": string, ...extra keys}.

func Success(c *gin.Context, statusCode int, message string, extra gin.H) {
	payload := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(statusCode, payload)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// AbortError writes the error envelope and stops the handler chain.
// Meant for middleware.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
