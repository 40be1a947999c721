package wheel

import "time"

type Segment struct {
	Game   string  `json:"game"`
	Votes  int     `json:"votes"`
	Weight float64 `json:"weight"`
	Start  float64 `json:"start"` // градусы
	Span   float64 `json:"span"`
}

type Round struct {
	SpinID    string    `json:"spin_id"`
	Game      string    `json:"game"`
	Angle     float64   `json:"angle"`
	Remaining int       `json:"remaining"`
	At        time.Time `json:"at"`
}

type StateResponse struct {
	Angle        float64   `json:"angle"`
	Phase        string    `json:"phase"`
	Finished     bool      `json:"finished"`
	SpinID       string    `json:"spin_id,omitempty"`
	Target       float64   `json:"target"`
	PointerAngle float64   `json:"pointer_angle"`
	Segments     []Segment `json:"segments"`
	Remaining    []string  `json:"remaining"`
	Log          []Round   `json:"log"`
	Winner       string    `json:"winner,omitempty"`
}

type SpinResponse struct {
	SpinID     string    `json:"spin_id"`
	From       float64   `json:"from"`
	Target     float64   `json:"target"`
	DurationMs int64     `json:"duration_ms"`
	Segments   []Segment `json:"segments"`
}

// Frame - сообщение в websocket
type Frame struct {
	SpinID string  `json:"spin_id,omitempty"`
	Angle  float64 `json:"angle"`
	Phase  string  `json:"phase"`
	Game   string  `json:"game,omitempty"`
}

type HistoryRecord struct {
	SpinID        string    `json:"spin_id"`
	Game          string    `json:"game"`
	Remaining     int       `json:"remaining"`
	IsFinalWinner bool      `json:"is_final_winner"`
	Winner        string    `json:"winner,omitempty"`
	At            time.Time `json:"at"`
}
