package models

// SequenceCounter is a persisted monotonic integer generator. One row per
// sequence name, incremented with a single atomic statement so two concurrent
// creators never see the same value.
type SequenceCounter struct {
	Name  string `gorm:"primaryKey" json:"name"`
	Value int64  `gorm:"not null" json:"value"`
}

func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
