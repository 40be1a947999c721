package converter

import (
	dto "game_wheel/internal/api/dto/wheel"
	"game_wheel/internal/model"
	"game_wheel/internal/wheel"
)

func ToStateResponse(s wheel.State) dto.StateResponse {
	remaining := make([]string, 0, len(s.Remaining))
	for _, it := range s.Remaining {
		remaining = append(remaining, it.Name)
	}

	log := make([]dto.Round, 0, len(s.Log))
	for _, r := range s.Log {
		log = append(log, dto.Round{
			SpinID:    r.SpinID,
			Game:      r.Name,
			Angle:     r.Angle,
			Remaining: r.Remaining,
			At:        r.At,
		})
	}

	out := dto.StateResponse{
		Angle:        s.Angle,
		Phase:        string(s.Phase),
		Finished:     s.Finished,
		SpinID:       s.SpinID,
		Target:       s.Target,
		PointerAngle: s.PointerAngle,
		Segments:     toSegments(s.Segments),
		Remaining:    remaining,
		Log:          log,
	}
	if s.Finished && len(remaining) == 1 {
		out.Winner = remaining[0]
	}

	return out
}

func ToSpinResponse(t wheel.SpinTicket) dto.SpinResponse {
	return dto.SpinResponse{
		SpinID:     t.ID,
		From:       t.From,
		Target:     t.Target,
		DurationMs: t.Duration.Milliseconds(),
		Segments:   toSegments(t.Segments),
	}
}

func ToFrame(f wheel.Frame) dto.Frame {
	return dto.Frame{
		SpinID: f.SpinID,
		Angle:  f.Angle,
		Phase:  string(f.Phase),
		Game:   f.Item,
	}
}

func ToHistoryResponse(records []model.RoundRecord) []dto.HistoryRecord {
	out := make([]dto.HistoryRecord, 0, len(records))
	for _, r := range records {
		out = append(out, dto.HistoryRecord{
			SpinID:        r.SpinID,
			Game:          r.Game,
			Remaining:     r.Remaining,
			IsFinalWinner: r.IsFinalWinner,
			Winner:        r.Winner,
			At:            r.At,
		})
	}
	return out
}

func toSegments(segments []wheel.Segment) []dto.Segment {
	out := make([]dto.Segment, 0, len(segments))
	for _, s := range segments {
		out = append(out, dto.Segment{
			Game:   s.Name,
			Votes:  s.Votes,
			Weight: s.Weight,
			Start:  s.Start,
			Span:   s.Span,
		})
	}
	return out
}
