package app

import (
	"context"
	"database/sql"
	statusAPI "lucky_dice/internal/api/status"
	"lucky_dice/internal/config"
	"lucky_dice/internal/config/env"
	"lucky_dice/internal/logger"
	"lucky_dice/internal/model"
	"lucky_dice/internal/repository"
	"lucky_dice/internal/repository/memory_repo"
	"lucky_dice/internal/repository/pg_repo"
	"lucky_dice/internal/repository/sqlite_repo"
	"lucky_dice/internal/repository/stats_repo"
	"lucky_dice/internal/service"
	"lucky_dice/internal/service/lucky"
	"lucky_dice/internal/service/status"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Configs
	gameCfg    config.GameConfig
	storageCfg config.StorageConfig
	pgConfig   config.PGConfig
	sqliteCfg  config.SQLiteConfig
	httpCfg    config.HTTPConfig
	loggerCfg  config.LoggerConfig

	logger *zap.Logger

	// Database
	dbClient *pgxpool.Pool
	sqliteDB *sql.DB

	//TXManager
	txManager repository.TxManager

	// Ledger bits
	ledgerRepo repository.LedgerRepository
	statsRepo  repository.StatsRepository

	// Status bits
	statusServ *status.Service
	statusHand *statusAPI.Handler

	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LoggerCfg())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
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

func (sp *ServiceProvider) SQLiteCfg() config.SQLiteConfig {
	if sp.sqliteCfg == nil {
		cfg, err := env.NewSQLiteConfig()
		if err != nil {
			panic("failed to get sqlite config: " + err.Error())
		}
		sp.sqliteCfg = cfg
	}
	return sp.sqliteCfg
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

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = pg_repo.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to migrate db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) SQLiteDB() *sql.DB {
	if sp.sqliteDB == nil {
		db, err := sqlite_repo.Open(sp.SQLiteCfg().Path())
		if err != nil {
			panic("failed to open sqlite db: " + err.Error())
		}
		sp.sqliteDB = db
	}
	return sp.sqliteDB
}

// TXManager транзакции под выбранное хранилище
func (sp *ServiceProvider) TXManager(ctx context.Context) repository.TxManager {
	if sp.txManager == nil {
		switch sp.StorageCfg().Driver() {
		case env.DriverPostgres:
			m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
			if err != nil {
				panic("failed to create tx manager: " + err.Error())
			}
			sp.txManager = m
		case env.DriverSQLite:
			sp.txManager = sqlite_repo.NewTxManager(sp.SQLiteDB())
		default:
			sp.txManager = memory_repo.NewTxManager()
		}
	}

	return sp.txManager
}

func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		switch sp.StorageCfg().Driver() {
		case env.DriverPostgres:
			sp.ledgerRepo = pg_repo.NewLedgerRepository(sp.DBClient(ctx))
		case env.DriverSQLite:
			sp.ledgerRepo = sqlite_repo.NewLedgerRepository(sp.SQLiteDB())
		default:
			sp.ledgerRepo = memory_repo.NewLedgerRepository()
		}
		sp.Logger().Debug("ledger ready", zap.String("driver", sp.StorageCfg().Driver()))
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.GameCfg().StatsWindow())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) StatusService(ctx context.Context) *status.Service {
	if sp.statusServ == nil {
		sp.statusServ = status.NewStatusService(sp.LedgerRepository(ctx), sp.StatsRepository())
	}
	return sp.statusServ
}

func (sp *ServiceProvider) StatusHandler(ctx context.Context) *statusAPI.Handler {
	if sp.statusHand == nil {
		sp.statusHand = statusAPI.NewHandler(statusAPI.HandlerDeps{
			Serv:   sp.StatusService(ctx),
			Logger: sp.Logger().Named("http"),
		})
	}
	return sp.statusHand
}

// NewGame открывает игру для игрока из консоли и привязывает к ней status API
func (sp *ServiceProvider) NewGame(ctx context.Context, player *model.Player) (service.GameService, error) {
	game, err := lucky.NewGameService(ctx, lucky.Deps{
		Config:    sp.GameCfg(),
		Player:    player,
		Ledger:    sp.LedgerRepository(ctx),
		Stats:     sp.StatsRepository(),
		TxManager: sp.TXManager(ctx),
		Logger:    sp.Logger().Named("game"),
	})
	if err != nil {
		return nil, err
	}
	sp.StatusService(ctx).Attach(game.SessionID())
	return game, nil
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Status endpoints
		statusHandler := sp.StatusHandler(ctx)
		r.Get("/session", statusHandler.Session)
		r.Get("/history", statusHandler.History)
		r.Get("/stats", statusHandler.Stats)

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения с базой
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.sqliteDB != nil {
		if err := sp.sqliteDB.Close(); err != nil {
			sp.Logger().Warn("failed to close sqlite db", zap.Error(err))
		}
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
