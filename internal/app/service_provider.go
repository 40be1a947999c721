package app

import (
	"context"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	authAPI "game_wheel/internal/api/auth"
	gameAPI "game_wheel/internal/api/game"
	settingsAPI "game_wheel/internal/api/settings"
	wheelAPI "game_wheel/internal/api/wheel"
	"game_wheel/internal/config"
	"game_wheel/internal/config/env"
	"game_wheel/internal/db"
	"game_wheel/internal/middleware"
	"game_wheel/internal/model"
	"game_wheel/internal/repository"
	"game_wheel/internal/repository/game_repo"
	"game_wheel/internal/repository/history_repo"
	"game_wheel/internal/repository/settings_repo"
	"game_wheel/internal/service"
	"game_wheel/internal/service/auth"
	"game_wheel/internal/service/game"
	"game_wheel/internal/service/settings"
	wheelService "game_wheel/internal/service/wheel"
	"game_wheel/internal/wheel"
	"game_wheel/pkg/logger"
	"game_wheel/pkg/resp"
)

type ServiceProvider struct {
	logger *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis, может не быть
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Auth bits
	jwtConfig       config.JWTConfig
	moderatorConfig config.ModeratorConfig
	authServ        service.AuthService
	authHand        *authAPI.Handler

	// Game bits
	gameRepo repository.GameRepository
	gameServ service.GameService
	gameHand *gameAPI.Handler

	// Settings bits
	settingsRepo repository.SettingsRepository
	settingsServ service.SettingsService
	settingsHand *settingsAPI.Handler

	// Wheel bits
	wheelCfg    config.WheelConfig
	wheelCtrl   *wheel.Controller
	historyRepo repository.HistoryRepository
	wheelServ   service.WheelService
	wheelHand   *wheelAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(env.NewLogConfig().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse pg dsn: " + err.Error())
		}
		poolCfg.MaxConns = sp.PgConfig().MaxConns()
		poolCfg.ConnConfig.ConnectTimeout = sp.PgConfig().ConnectTimeout()

		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = db.CreateSchema(ctx, dbc)
		if err != nil {
			panic(err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

// RedisClient - nil, если REDIS_ADDR не задан
func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil && sp.RedisConfig().Address() != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Address(),
			Password: sp.RedisConfig().Password(),
			DB:       sp.RedisConfig().DB(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.Logger().Info("connected to redis", zap.String("addr", sp.RedisConfig().Address()))
		sp.redisClient = client
	}
	return sp.redisClient
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) ModeratorConfig() config.ModeratorConfig {
	if sp.moderatorConfig == nil {
		cfg, err := env.NewModeratorConfig()
		if err != nil {
			panic("failed to get moderator config: " + err.Error())
		}
		sp.moderatorConfig = cfg
	}
	return sp.moderatorConfig
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.JWTConfig(), sp.ModeratorConfig())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:   sp.AuthService(),
			Logger: sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameRepository(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx))
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(sp.GameRepository(ctx), sp.TXManager(ctx), sp.WheelService(ctx), sp.Logger())
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:   sp.GameService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) SettingsRepository(ctx context.Context) repository.SettingsRepository {
	if sp.settingsRepo == nil {
		sp.settingsRepo = settings_repo.NewSettingsRepository(sp.DBClient(ctx))
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) SettingsService(ctx context.Context) service.SettingsService {
	if sp.settingsServ == nil {
		defaults := model.WheelSettings{
			Coefficient:     sp.WheelCfg().DefaultCoefficient(),
			ZeroVotesWeight: sp.WheelCfg().DefaultZeroVotesWeight(),
		}
		sp.settingsServ = settings.NewSettingsService(sp.SettingsRepository(ctx), defaults, sp.WheelController())
	}
	return sp.settingsServ
}

func (sp *ServiceProvider) SettingsHandler(ctx context.Context) *settingsAPI.Handler {
	if sp.settingsHand == nil {
		sp.settingsHand = settingsAPI.NewHandler(settingsAPI.HandlerDeps{
			Serv:   sp.SettingsService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.settingsHand
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(env.WheelConfigPath())
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) WheelController() *wheel.Controller {
	if sp.wheelCtrl == nil {
		cfg := wheel.Config{
			Duration:     sp.WheelCfg().SpinDuration(),
			ExtraSpins:   sp.WheelCfg().ExtraSpins(),
			PointerAngle: sp.WheelCfg().PointerAngle(),
		}
		sched := wheel.NewTickerScheduler(sp.WheelCfg().FrameInterval())
		sp.wheelCtrl = wheel.NewController(cfg, sched, nil, sp.Logger().Named("wheel"))
	}
	return sp.wheelCtrl
}

// HistoryRepository - Redis, если он настроен, иначе память процесса
func (sp *ServiceProvider) HistoryRepository(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		size := sp.WheelCfg().HistorySize()
		if client := sp.RedisClient(ctx); client != nil {
			sp.historyRepo = history_repo.NewRedisHistoryRepository(client, history_repo.DefaultKey, size)
		} else {
			sp.Logger().Info("REDIS_ADDR is not set, wheel history is kept in memory")
			sp.historyRepo = history_repo.NewMemoryHistoryRepository(size)
		}
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheelService.NewWheelService(
			sp.WheelController(),
			sp.GameRepository(ctx),
			sp.SettingsService(ctx),
			sp.HistoryRepository(ctx),
			sp.Logger(),
		)
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv:   sp.WheelService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Logger(sp.Logger()))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.HTTPCfg().CORSOrigins(),
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteMessage(w, http.StatusOK, "ok")
		})

		authHandler := sp.AuthHandler()
		gameHandler := sp.GameHandler(ctx)
		settingsHandler := sp.SettingsHandler(ctx)
		wheelHandler := sp.WheelHandler(ctx)

		// Public endpoints
		r.Post("/login", authHandler.Login)
		r.Get("/games", gameHandler.List)
		r.Post("/vote", gameHandler.Vote)
		r.Get("/wheel", wheelHandler.State)
		r.Get("/wheel/history", wheelHandler.History)
		r.Get("/wheel/ws", wheelHandler.Stream)

		// Moderator endpoints
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTConfig().AccessTokenSecretKey()))

			rr.Post("/games", gameHandler.Add)
			rr.Patch("/games", gameHandler.Edit)
			rr.Delete("/games", gameHandler.Delete)

			rr.Get("/wheel-settings", settingsHandler.Get)
			rr.Patch("/wheel-settings", settingsHandler.Update)

			rr.Post("/wheel/spin", wheelHandler.Spin)
			rr.Post("/wheel/reset", wheelHandler.Reset)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает пул базы и клиент Redis
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
