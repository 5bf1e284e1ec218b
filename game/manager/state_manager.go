package manager

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Phase is the game's state-machine position.
type Phase int

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "running"
}

// SessionRecord summarises one game. It is kept in memory and logged on exit.
type SessionRecord struct {
	UUID      string        `json:"uuid"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Score     int           `json:"score"`
	Ticks     int           `json:"ticks"`
	Collision CollisionType `json:"-"`
	Cause     string        `json:"cause,omitempty"`
}

func (r SessionRecord) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

func (r SessionRecord) JSON() ([]byte, error) {
	return json.Marshal(r)
}

type StateManager struct {
	phase  Phase
	record SessionRecord
}

func NewStateManager(start time.Time) *StateManager {
	return &StateManager{
		phase: Running,
		record: SessionRecord{
			UUID:      uuid.New().String(),
			StartTime: start,
		},
	}
}

func (sm *StateManager) Phase() Phase {
	return sm.phase
}

func (sm *StateManager) IsGameOver() bool {
	return sm.phase == GameOver
}

// RecordTick counts a tick and the score it left behind.
func (sm *StateManager) RecordTick(score int) {
	if sm.phase == GameOver {
		return
	}
	sm.record.Ticks++
	sm.record.Score = score
}

// End moves the game to GameOver. Later calls are no-ops; GameOver is terminal.
func (sm *StateManager) End(at time.Time, cause CollisionType) {
	if sm.phase == GameOver {
		return
	}
	sm.phase = GameOver
	sm.record.EndTime = at
	sm.record.Collision = cause
	sm.record.Cause = cause.String()
}

func (sm *StateManager) Record() SessionRecord {
	return sm.record
}
