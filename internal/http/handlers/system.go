package handlers

import (
	"context"
	"net/http"
	"time"

	intconfig "railbook/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "railbook backend running"})
}

// DBCheck verifies both stores: MySQL for auth, Mongo for booking records.
func DBCheck(c *gin.Context) {
	out := gin.H{}

	if intconfig.DB == nil {
		out["mysql"] = "not connected"
	} else if err := intconfig.DB.Ping(); err != nil {
		out["mysql"] = "ping failed: " + err.Error()
	} else {
		out["mysql"] = "ok"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := intconfig.MongoPing(ctx); err != nil {
		out["mongo"] = "ping failed: " + err.Error()
	} else {
		out["mongo"] = "ok"
	}

	status := http.StatusOK
	if out["mysql"] != "ok" || out["mongo"] != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, out)
}
