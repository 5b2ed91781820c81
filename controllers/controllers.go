package controllers

import "github.com/gin-gonic/gin"

// currentUserID reads the identity set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}
