package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request and recovers from handler panics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf("panic method=%s path=%s err=%v\n%s",
					c.Request.Method, c.Request.URL.Path, recovered, debug.Stack())

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				c.Abort()
				return
			}

			status := c.Writer.Status()
			line := fmt.Sprintf("%s %s status=%d duration=%s",
				c.Request.Method, c.Request.URL.Path, status, time.Since(start))
			if status >= http.StatusInternalServerError {
				log.Printf("request_error %s errors=%v", line, c.Errors.Errors())
			} else {
				log.Println(line)
			}
		}()

		c.Next()
	}
}
