package memory

import (
	"sync"
	"time"

	"repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
	"repo-activity-feed/pkg/log"
)

type implRepository struct {
	mu        sync.RWMutex
	actions   []model.Action // Insertion order
	watermark *time.Time
	l         log.Logger
}

// New creates an in-process Repository. Contents are lost on restart.
func New(l log.Logger) repository.Repository {
	return &implRepository{l: l}
}
