package domain

import "time"

type Review struct {
	ID        string
	ProductID string
	UserID    string
	UserName  string
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
}
