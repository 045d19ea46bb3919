package model

// Todo is the persisted task record. The id is assigned by the store on
// insert and never reused; AUTOINCREMENT keeps ids strictly increasing even
// after deletions. The time column carries the client-supplied timestamp
// text as-is.
type Todo struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
	Time        string `gorm:"type:datetime;not null" json:"time"`
	Description string `gorm:"size:255;not null" json:"description"`
}
