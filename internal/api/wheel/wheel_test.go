package wheel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	dto "game_wheel/internal/api/dto/wheel"
	"game_wheel/internal/model"
	"game_wheel/internal/wheel"
)

type fakeWheel struct {
	state    wheel.State
	spinErr  error
	frames   chan wheel.Frame
	records  []model.RoundRecord
	limit    int
	reloaded bool
}

func (f *fakeWheel) Reload(context.Context) error {
	f.reloaded = true
	return nil
}

func (f *fakeWheel) SyncVotes(context.Context) error { return nil }

func (f *fakeWheel) Spin(context.Context) (wheel.SpinTicket, error) {
	if f.spinErr != nil {
		return wheel.SpinTicket{}, f.spinErr
	}
	return wheel.SpinTicket{ID: "spin-1", From: 0, Target: 2000, Duration: 4500 * time.Millisecond}, nil
}

func (f *fakeWheel) State() wheel.State { return f.state }

func (f *fakeWheel) Subscribe() (<-chan wheel.Frame, func()) {
	return f.frames, func() {}
}

func (f *fakeWheel) History(_ context.Context, limit int) ([]model.RoundRecord, error) {
	f.limit = limit
	return f.records, nil
}

func newHandler(f *fakeWheel) *Handler {
	return NewHandler(HandlerDeps{Serv: f, Logger: zap.NewNop()})
}

func TestState(t *testing.T) {
	f := &fakeWheel{state: wheel.State{
		Angle:    90,
		Phase:    wheel.PhaseIdle,
		Finished: true,
		Segments: []wheel.Segment{{Name: "Doom", Weight: 1, Span: 360}},
		Remaining: []wheel.Item{
			{Name: "Doom"},
		},
	}}
	w := httptest.NewRecorder()

	newHandler(f).State(w, httptest.NewRequest(http.MethodGet, "/wheel", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var got dto.StateResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
	if got.Winner != "Doom" || got.Phase != "idle" || len(got.Segments) != 1 {
		t.Errorf("Unexpected state: %+v", got)
	}
}

func TestSpin(t *testing.T) {
	w := httptest.NewRecorder()
	newHandler(&fakeWheel{}).Spin(w, httptest.NewRequest(http.MethodPost, "/wheel/spin", nil))

	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d. Body: %s", w.Code, w.Body.String())
	}
	var got dto.SpinResponse
	_ = json.NewDecoder(w.Body).Decode(&got)
	if got.SpinID != "spin-1" || got.DurationMs != 4500 {
		t.Errorf("Unexpected ticket: %+v", got)
	}
}

func TestSpinConflict(t *testing.T) {
	for _, err := range []error{wheel.ErrSpinInProgress, wheel.ErrPoolExhausted, wheel.ErrEmptyPool} {
		w := httptest.NewRecorder()
		newHandler(&fakeWheel{spinErr: err}).Spin(w, httptest.NewRequest(http.MethodPost, "/wheel/spin", nil))
		if w.Code != http.StatusConflict {
			t.Errorf("%v: expected 409, got %d", err, w.Code)
		}
	}
}

func TestHistoryLimit(t *testing.T) {
	f := &fakeWheel{records: []model.RoundRecord{{Game: "Doom"}}}
	h := newHandler(f)

	w := httptest.NewRecorder()
	h.History(w, httptest.NewRequest(http.MethodGet, "/wheel/history", nil))
	if w.Code != http.StatusOK || f.limit != defaultHistoryLimit {
		t.Errorf("Expected default limit, got status %d limit %d", w.Code, f.limit)
	}

	w = httptest.NewRecorder()
	h.History(w, httptest.NewRequest(http.MethodGet, "/wheel/history?limit=100000", nil))
	if f.limit != maxHistoryLimit {
		t.Errorf("Expected limit capped at %d, got %d", maxHistoryLimit, f.limit)
	}

	w = httptest.NewRecorder()
	h.History(w, httptest.NewRequest(http.MethodGet, "/wheel/history?limit=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad limit, got %d", w.Code)
	}
}

func TestStream(t *testing.T) {
	f := &fakeWheel{
		state:  wheel.State{Angle: 45, Phase: wheel.PhaseIdle},
		frames: make(chan wheel.Frame, 1),
	}
	srv := httptest.NewServer(http.HandlerFunc(newHandler(f).Stream))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var initial dto.Frame
	if err := conn.ReadJSON(&initial); err != nil {
		t.Fatalf("Failed to read initial frame: %v", err)
	}
	if initial.Angle != 45 || initial.Phase != "idle" {
		t.Errorf("Unexpected initial frame: %+v", initial)
	}

	f.frames <- wheel.Frame{SpinID: "s", Angle: 100, Phase: wheel.PhaseLanded, Item: "Doom"}

	var landed dto.Frame
	if err := conn.ReadJSON(&landed); err != nil {
		t.Fatalf("Failed to read frame: %v", err)
	}
	if landed.Game != "Doom" || landed.Phase != "landed" {
		t.Errorf("Unexpected frame: %+v", landed)
	}
}
