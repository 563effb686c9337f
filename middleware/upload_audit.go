package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Habib786340/CustomerLeadApplication/models"
)

// UploadAudit records successful mutations (uploads, deletions, priority
// changes) per day and route pattern. Best-effort; failures never affect the
// request outcome.
func UploadAudit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case "POST", "PUT", "PATCH", "DELETE":
		default:
			return
		}
		status := c.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}

		// The route pattern keeps cardinality bounded; raw paths embed ids.
		path := c.FullPath()
		if path == "" {
			return
		}

		now := time.Now().In(time.Local)
		localMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		// Atomic upsert to avoid duplicate key errors under concurrency
		_ = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "path"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1"), "updated_at": time.Now()}),
		}).Create(&models.AuditEntry{Date: localMidnight, Path: path, Count: 1}).Error
	}
}
