package settings

import (
	"context"
	"errors"
	"testing"

	"game_wheel/internal/model"
	"game_wheel/internal/wheel"
)

type fakeRepo struct {
	stored *model.WheelSettings
	saves  int
}

func (r *fakeRepo) Get(context.Context) (*model.WheelSettings, error) {
	if r.stored == nil {
		return nil, model.ErrSettingsNotFound
	}
	cp := *r.stored
	return &cp, nil
}

func (r *fakeRepo) Save(_ context.Context, s *model.WheelSettings) error {
	cp := *s
	r.stored = &cp
	r.saves++
	return nil
}

type fakeWheel struct {
	params wheel.Params
}

func (w *fakeWheel) SetParams(p wheel.Params) error {
	w.params = p
	return nil
}

var defaults = model.WheelSettings{Coefficient: 2, ZeroVotesWeight: 40}

func TestGetDefaults(t *testing.T) {
	s := NewSettingsService(&fakeRepo{}, defaults, &fakeWheel{})

	got, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if *got != defaults {
		t.Errorf("Expected defaults %+v, got %+v", defaults, *got)
	}
}

func TestUpdate(t *testing.T) {
	repo := &fakeRepo{}
	w := &fakeWheel{}
	s := NewSettingsService(repo, defaults, w)
	ctx := context.Background()

	want := model.WheelSettings{Coefficient: 3.5, ZeroVotesWeight: 10}
	if err := s.Update(ctx, &want); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := s.Get(ctx)
	if *got != want {
		t.Errorf("Expected %+v, got %+v", want, *got)
	}
	if w.params.Coefficient != 3.5 || w.params.ZeroVoteWeight != 10 {
		t.Errorf("Wheel did not receive new params: %+v", w.params)
	}
}

func TestUpdateRejectsInvalid(t *testing.T) {
	repo := &fakeRepo{}
	s := NewSettingsService(repo, defaults, &fakeWheel{})

	tests := []model.WheelSettings{
		{Coefficient: -1, ZeroVotesWeight: 40},
		{Coefficient: 2, ZeroVotesWeight: 0.5},
	}
	for _, tt := range tests {
		if err := s.Update(context.Background(), &tt); !errors.Is(err, wheel.ErrInvalidParams) {
			t.Errorf("%+v: expected ErrInvalidParams, got %v", tt, err)
		}
	}
	if repo.saves != 0 {
		t.Errorf("Invalid settings must not be saved")
	}
}
