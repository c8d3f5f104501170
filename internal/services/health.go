package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"brightbooks/internal/database"
)

// HealthResult is the response of the health check
type HealthResult struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// Healthy reports whether every dependency is up
func (r *HealthResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthService implements the health service
type HealthService struct {
	db      *gorm.DB
	name    string
	version string
}

// NewHealthService creates a new health service
func NewHealthService(db *gorm.DB, name, version string) *HealthService {
	return &HealthService{db: db, name: name, version: version}
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) *HealthResult {
	result := &HealthResult{
		Status:   "healthy",
		Service:  s.name,
		Version:  s.version,
		Database: "connected",
	}

	if err := database.HealthCheck(ctx, s.db); err != nil {
		log.Printf("[HEALTH] Database check failed: %v", err)
		result.Status = "degraded"
		result.Database = "unavailable"
	}
	return result
}
