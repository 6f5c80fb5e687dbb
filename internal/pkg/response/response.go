package response

import "github.com/gin-gonic/gin"

// Detail writes the API's error envelope: {"detail": "..."}.
func Detail(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}

// Message writes a plain informational body: {"message": "..."}.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
