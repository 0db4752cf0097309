package components

import "github.com/yohamta/donburi"

// ClockData is gameplay time. It stops while paused.
type ClockData struct {
	Elapsed float64 // seconds
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
