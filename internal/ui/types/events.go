package types

import (
	"snake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventSteer
	UIEventCopyStatus
	UIEventQuit
)

type SteerData struct {
	Direction domain.Direction
}

type CopyStatusData struct {
	Status string
}
