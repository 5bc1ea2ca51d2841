package models

type AuditEvent struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Action   string `gorm:"size:50;not null" json:"action"`
	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:36" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	At string `gorm:"size:20" json:"at"`
}
