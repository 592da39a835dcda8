package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const actorHeader = "X-Actor-Id"

// GetActorID reads the acting user id from the request headers. The upstream
// gateway owns authentication; an absent or malformed header maps to 0
// (system actor).
func GetActorID(c *gin.Context) uint64 {
	value := c.GetHeader(actorHeader)
	if value == "" {
		return 0
	}
	actorID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return actorID
}
