package handler

import (
	"context"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports process and dependency health: CPU and memory
// usage plus a MongoDB ping.
func HealthHandler(c *gin.Context) {
	status := "ok"
	mongoStatus := "ok"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if utils.MongoClient == nil {
		status = "degraded"
		mongoStatus = "not connected"
	} else if err := utils.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		status = "degraded"
		mongoStatus = err.Error()
	}

	utils.Success(c, gin.H{
		"status":         status,
		"mongo":          mongoStatus,
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
