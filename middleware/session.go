package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const guestSessionKey = "guestSessionID"

// GuestSessionMiddleware gắn một session id cho khách vãng lai đặt chỗ mà
// không đăng nhập. Client gửi lại X-Session-ID ở các request sau để các đặt
// chỗ của cùng một khách nhóm được với nhau; chưa có thì server cấp mới và
// trả về qua header.
func GuestSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(guestSessionKey, sessionID)
		c.Writer.Header().Set("X-Session-ID", sessionID)

		c.Next()
	}
}

// GuestSessionID đọc session id do GuestSessionMiddleware gắn vào, trả về
// chuỗi rỗng khi middleware không chạy trên route đó.
func GuestSessionID(c *gin.Context) string {
	return c.GetString(guestSessionKey)
}
