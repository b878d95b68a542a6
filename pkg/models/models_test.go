package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCrawlResult_Duration(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	res := &CrawlResult{
		StartTime: start,
		EndTime:   start.Add(90 * time.Second),
	}
	assert.Equal(t, 90*time.Second, res.Duration())
}

func TestCrawlResult_DurationZero(t *testing.T) {
	now := time.Now()
	res := &CrawlResult{StartTime: now, EndTime: now}
	assert.Equal(t, time.Duration(0), res.Duration())
}
