package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReportsHandler receives change notifications from report storage
type ReportsHandler struct {
	refresher ChangeNotifier
}

// ChangeNotifier interface for dependency injection
type ChangeNotifier interface {
	Notify()
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(refresher ChangeNotifier) *ReportsHandler {
	return &ReportsHandler{refresher: refresher}
}

// Changed handles POST /reports/changed requests
//
//	@Summary	Signal that persisted reports changed
//	@Success	202
//	@Router		/reports/changed [post]
func (h *ReportsHandler) Changed(c *gin.Context) {
	h.refresher.Notify()
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh scheduled"})
}
