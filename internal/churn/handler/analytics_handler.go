package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/repository"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/service"
)

type AnalyticsHandler struct {
	svc    *service.AnalyticsService
	export *service.ExportService
}

func NewAnalyticsHandler(svc *service.AnalyticsService, export *service.ExportService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, export: export}
}

func (h *AnalyticsHandler) ListLTV(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.LTVListParams{
		Segment: c.Query("segment"),
		Status:  c.Query("status"),
		Page:    page,
		Size:    size,
	}
	rows, total, err := h.svc.ListLTV(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": rows, "total": total, "page": page, "size": size}})
}

func (h *AnalyticsHandler) GetLTV(c *gin.Context) {
	row, err := h.svc.GetLTV(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": row})
}

// ChurnSummary returns the per-segment churn rate table.
func (h *AnalyticsHandler) ChurnSummary(c *gin.Context) {
	rows, err := h.svc.ChurnSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": rows})
}

func (h *AnalyticsHandler) ListRiskFeatures(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.RiskListParams{
		RiskCategory: c.Query("risk_category"),
		Segment:      c.Query("segment"),
		Page:         page,
		Size:         size,
	}
	rows, total, err := h.svc.ListRiskFeatures(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": rows, "total": total, "page": page, "size": size}})
}

func (h *AnalyticsHandler) GetRiskFeatures(c *gin.Context) {
	row, err := h.svc.GetRiskFeatures(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": row})
}

// ExportRiskFeatures streams the feature table as xlsx, or uploads it to
// object storage and returns a download URL when ?upload=true.
func (h *AnalyticsHandler) ExportRiskFeatures(c *gin.Context) {
	if c.Query("upload") == "true" {
		url, err := h.export.UploadRiskFeatureWorkbook(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 50002, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"url": url}})
		return
	}

	f, err := h.export.BuildRiskFeatureWorkbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50002, "message": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50002, "message": err.Error()})
		return
	}

	filename := fmt.Sprintf("risk_features_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
