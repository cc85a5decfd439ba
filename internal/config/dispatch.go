package config

import (
	"os"
	"strconv"
	"time"
)

type DispatchConfig struct {
	Workers      int
	QueueSize    int
	TaskTimeout  time.Duration
	GrantTimeout time.Duration
}

func NewDispatchConfig() *DispatchConfig {
	workers, err := strconv.Atoi(os.Getenv("DISPATCH_WORKERS"))
	if err != nil || workers <= 0 {
		workers = 2
	}
	queueSize, err := strconv.Atoi(os.Getenv("DISPATCH_QUEUE_SIZE"))
	if err != nil || queueSize <= 0 {
		queueSize = 64
	}
	grantTimeoutSec, err := strconv.Atoi(os.Getenv("ROLE_GRANT_TIMEOUT_SEC"))
	if err != nil || grantTimeoutSec <= 0 {
		grantTimeoutSec = 15
	}
	return &DispatchConfig{
		Workers:      workers,
		QueueSize:    queueSize,
		TaskTimeout:  30 * time.Second,
		GrantTimeout: time.Duration(grantTimeoutSec) * time.Second,
	}
}
