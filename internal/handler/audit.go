package handler

import (
	"net/http"
	"strconv"

	"github.com/ctabares06/where-my-cash-goes/internal/models"
	"github.com/ctabares06/where-my-cash-goes/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditHandler lists the caller's own audit trail.
type AuditHandler struct {
	DB *gorm.DB
}

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{DB: db}
}

func (h *AuditHandler) ListLogs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	base := h.DB.Model(&models.AuditLog{}).Where("user_id = ?", user.ID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load logs")
		return
	}

	var logs []models.AuditLog
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(size).
		Offset(offset).
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load logs")
		return
	}

	util.Success(c, util.Response{
		"items": logs,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
