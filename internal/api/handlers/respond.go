package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hackathon_web/internal/apperrors"
)

// respondError 把域內錯誤分類對應到 HTTP 狀態碼。
// 持久化失敗一律以內部錯誤回報，細節只留在伺服器日誌。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAuthenticationRequired),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrExpiredToken),
		errors.Is(err, apperrors.ErrUnknownUser):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAuthorizationDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyEvaluated):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrInternal.Error()})
	}
}

// currentUserID 從上下文中取出認證中間件放入的使用者 ID
func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	id, _ := userID.(uint)
	return id
}

// currentUserRole 從上下文中取出使用者角色
func currentUserRole(c *gin.Context) string {
	role, _ := c.Get("userRole")
	r, _ := role.(string)
	return r
}
