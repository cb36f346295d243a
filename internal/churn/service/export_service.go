package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/repository"
)

// ExportService renders the risk feature table as an xlsx workbook for
// the data science team. Feature columns only, no charts.
type ExportService struct {
	analytics *repository.AnalyticsRepository
	mc        *minio.Client
	bucket    string
}

func NewExportService(analytics *repository.AnalyticsRepository, mc *minio.Client, bucket string) *ExportService {
	return &ExportService{analytics: analytics, mc: mc, bucket: bucket}
}

var exportHeaders = []string{
	"customer_id", "customer_segment", "age",
	"total_subscriptions", "avg_monthly_charges", "total_spent",
	"has_churned", "has_paperless_billing",
	"avg_data_usage", "total_support_tickets", "avg_satisfaction",
	"failed_payments_count", "avg_late_fees", "risk_category",
}

// BuildRiskFeatureWorkbook queries the full feature view and writes it to
// a single-sheet workbook.
func (s *ExportService) BuildRiskFeatureWorkbook() (*excelize.File, error) {
	rows, err := s.analytics.AllRiskFeatures()
	if err != nil {
		return nil, fmt.Errorf("load risk features: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "RiskFeatures"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		values := []interface{}{
			row.CustomerID, row.CustomerSegment, row.Age,
			row.TotalSubscriptions, row.AvgMonthlyCharges, row.TotalSpent,
			row.HasChurned, row.HasPaperlessBilling,
			row.AvgDataUsage, row.TotalSupportTickets, row.AvgSatisfaction,
			row.FailedPaymentsCount, row.AvgLateFees, row.RiskCategory,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}

// UploadRiskFeatureWorkbook writes the workbook to object storage and
// returns a presigned download URL valid for 24 hours.
func (s *ExportService) UploadRiskFeatureWorkbook(ctx context.Context) (string, error) {
	if s.mc == nil {
		return "", fmt.Errorf("object storage is not configured")
	}

	f, err := s.BuildRiskFeatureWorkbook()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", fmt.Errorf("encode workbook: %w", err)
	}

	objectName := fmt.Sprintf("exports/risk_features_%s.xlsx", time.Now().Format("20060102_150405"))
	_, err = s.mc.PutObject(ctx, s.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		return "", fmt.Errorf("upload workbook: %w", err)
	}

	url, err := s.mc.PresignedGetObject(ctx, s.bucket, objectName, 24*time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("presign workbook: %w", err)
	}
	return url.String(), nil
}
