package models

import (
	"time"
)

// ReadStat 某个内容对象在某一天的阅读量，按天聚合
type ReadStat struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EntityKind string    `gorm:"size:20;not null;uniqueIndex:idx_read_stats_day" json:"entity_kind"`
	EntityID   uint      `gorm:"not null;uniqueIndex:idx_read_stats_day" json:"entity_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_read_stats_day;index" json:"date"`
	ReadNum    int       `gorm:"default:0" json:"read_num"`
}
