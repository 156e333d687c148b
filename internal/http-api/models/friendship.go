package models

import "time"

// SequenceFriendship names the counter that hands out friendship ids.
const SequenceFriendship = "friendship_sequence"

// Friendship is one undirected relation stored as a directed record:
// User sent the request, Friend is the addressee who may confirm it.
// At most one record exists per unordered pair.
type Friendship struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	User      string     `gorm:"not null;index:idx_friendship_pair,unique" json:"user"`
	Friend    string     `gorm:"not null;index:idx_friendship_pair,unique" json:"friend"`
	Confirmed bool       `json:"confirmed"`
	Since     *time.Time `json:"since,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}
