package model

import "time"

// Container edustaa Docker containeria
type Container struct {
	ID      string
	Name    string
	Image   string
	Status  string
	State   string
	Created time.Time
}
