package game_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"game_wheel/internal/model"
	"game_wheel/internal/repository"
)

const (
	table        = "games"
	colName      = "name"
	colVotes     = "votes"
	colVoters    = "voters"
	colCreatedAt = "created_at"

	uniqueViolation = "23505"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameRepository(dbc *pgxpool.Pool) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn - транзакция из контекста, если она открыта, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// List - все игры в порядке добавления
func (r *repo) List(ctx context.Context) ([]model.Game, error) {
	query := psql.Select(colName, colVotes, colVoters).
		From(table).
		OrderBy(colCreatedAt, colName)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]model.Game, 0)
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.Name, &g.Votes, &g.Voters); err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

// GetForUpdate - игра по имени с блокировкой строки до конца транзакции
func (r *repo) GetForUpdate(ctx context.Context, name string) (*model.Game, error) {
	query := psql.Select(colName, colVotes, colVoters).
		From(table).
		Where(sq.Eq{colName: name}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var g model.Game
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&g.Name, &g.Votes, &g.Voters)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	return &g, nil
}

// Create - новая игра. Повтор имени даёт model.ErrGameExists
func (r *repo) Create(ctx context.Context, game *model.Game) error {
	query := psql.Insert(table).
		Columns(colName, colVotes, colVoters).
		Values(game.Name, game.Votes, voters(game.Voters))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return mapError(err)
}

// Update - переписывает игру целиком, в том числе имя
func (r *repo) Update(ctx context.Context, oldName string, game *model.Game) error {
	query := psql.Update(table).
		Set(colName, game.Name).
		Set(colVotes, game.Votes).
		Set(colVoters, voters(game.Voters)).
		Where(sq.Eq{colName: oldName})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrGameNotFound
	}

	return nil
}

func (r *repo) Delete(ctx context.Context, name string) error {
	query := psql.Delete(table).
		Where(sq.Eq{colName: name})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrGameNotFound
	}

	return nil
}

// AddVoter - плюс один голос и имя голосующего в список
func (r *repo) AddVoter(ctx context.Context, name, username string) error {
	query := psql.Update(table).
		Set(colVotes, sq.Expr(colVotes+" + 1")).
		Set(colVoters, sq.Expr("array_append("+colVoters+", ?)", username)).
		Where(sq.Eq{colName: name})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrGameNotFound
	}

	return nil
}

func voters(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.ErrGameExists
	}
	return err
}
