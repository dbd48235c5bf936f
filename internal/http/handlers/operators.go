package handlers

import (
	"net/http"
	"time"

	"railbook/internal/domain/models"
	"railbook/internal/repositories"
	"railbook/internal/validations"

	"github.com/gin-gonic/gin"
)

func ListHandlers(c *gin.Context) {
	repo := repositories.HandlerRepository{}
	hs, err := repo.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"handlers": hs, "count": len(hs)})
}

func CreateHandler(c *gin.Context) {
	var req validations.CreateHandlerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	h := models.Handler{Name: req.Name}
	repo := repositories.HandlerRepository{}
	if err := repo.Create(c.Request.Context(), &h); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h)
}

func DeleteHandler(c *gin.Context) {
	repo := repositories.HandlerRepository{}
	if err := repo.Delete(c.Request.Context(), c.Param("name")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "handler deleted"})
}

// HandlerUsage reports per-handler booking counts since the stats epoch.
func HandlerUsage(c *gin.Context) {
	svc := usageService(c)
	stats, err := svc.HandlerStats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"since": svc.HandlerSince.Format(time.DateOnly),
		"usage": stats,
	})
}
