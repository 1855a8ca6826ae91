package domain

import "time"

// CullingAlert is the recorded recommendation to remove a low-performing
// doe from the breeding pool. Insert-only; nothing acts on it
// automatically.
type CullingAlert struct {
	ID               string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FarmID           string    `gorm:"type:varchar(36);not null;index" json:"farm_id"`
	DoeID            string    `gorm:"type:varchar(36);not null" json:"doe_id"`
	BreedingRecordID string    `gorm:"type:varchar(36);not null" json:"breeding_record_id"`
	Reason           string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CullingNotifier delivers a culling recommendation out of band (email
// for now). Implementations must not fail the surrounding operation.
type CullingNotifier interface {
	NotifyCulling(farmID, doeID, reason string)
}
