package settings_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"game_wheel/internal/model"
	"game_wheel/internal/repository"
)

const (
	table              = "wheel_settings"
	colID              = "id"
	colCoefficient     = "coefficient"
	colZeroVotesWeight = "zero_votes_weight"
	colUpdatedAt       = "updated_at"

	// настройки колеса одни на весь сервис
	settingsID = 1
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSettingsRepository(dbc *pgxpool.Pool) repository.SettingsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Get - сохранённые настройки. Если их ещё не сохраняли - model.ErrSettingsNotFound
func (r *repo) Get(ctx context.Context) (*model.WheelSettings, error) {
	query := psql.Select(colCoefficient, colZeroVotesWeight).
		From(table).
		Where(sq.Eq{colID: settingsID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s model.WheelSettings
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&s.Coefficient, &s.ZeroVotesWeight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSettingsNotFound
		}
		return nil, err
	}

	return &s, nil
}

// Save - upsert единственной строки настроек
func (r *repo) Save(ctx context.Context, settings *model.WheelSettings) error {
	query := psql.Insert(table).
		Columns(colID, colCoefficient, colZeroVotesWeight).
		Values(settingsID, settings.Coefficient, settings.ZeroVotesWeight).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " +
			colCoefficient + " = EXCLUDED." + colCoefficient + ", " +
			colZeroVotesWeight + " = EXCLUDED." + colZeroVotesWeight + ", " +
			colUpdatedAt + " = NOW()")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
