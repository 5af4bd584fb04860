package models

import "time"

type Group struct {
	ID        int64          `json:"id" pg:",pk"`
	Name      string         `json:"name" pg:",notnull"`
	IsActive  bool           `json:"is_active" pg:",use_zero,default:true"`
	CreatedAt time.Time      `json:"created_at" pg:"default:now()"`
	Members   []*GroupMember `json:"members,omitempty" pg:"rel:has-many"`
}

type GroupMember struct {
	ID          int64     `json:"id" pg:",pk"`
	GroupID     int64     `json:"group_id" pg:",notnull"`
	MemberID    int64     `json:"member_id" pg:",notnull"`
	DisplayName string    `json:"display_name" pg:",notnull"`
	IsActive    bool      `json:"is_active" pg:",use_zero,default:true"`
	CreatedAt   time.Time `json:"created_at" pg:"default:now()"`
}
