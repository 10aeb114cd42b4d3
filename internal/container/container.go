package container

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-employee-auth/config"
	"github.com/oksasatya/go-employee-auth/internal/application"
	repo "github.com/oksasatya/go-employee-auth/internal/domain/repository"
	"github.com/oksasatya/go-employee-auth/internal/infrastructure/messaging"
	pginfra "github.com/oksasatya/go-employee-auth/internal/infrastructure/postgres"
	sqliteinfra "github.com/oksasatya/go-employee-auth/internal/infrastructure/sqlite"
	"github.com/oksasatya/go-employee-auth/pkg/helpers"
)

// Container holds the constructed components shared by the router modules.
// Redis and Notifier are nil when their backends are not configured.
type Container struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Users     repo.UserRepository
	Employees repo.EmployeeRepository
	Redis     *redis.Client
	Tokens    *helpers.TokenManager
	Hasher    *helpers.PasswordHasher
	Notifier  application.RegistrationNotifier

	closers []func()
}

// Store is an opened credential and employee store.
type Store struct {
	Users     repo.UserRepository
	Employees repo.EmployeeRepository
	Close     func()
}

// OpenStore opens the store selected by DB_DRIVER and creates its tables.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, errors.Wrap(err, "connect postgres")
		}
		if err := pginfra.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			Users:     pginfra.NewUserRepository(pool),
			Employees: pginfra.NewEmployeeRepository(pool),
			Close:     pool.Close,
		}, nil
	case "sqlite":
		db, err := sqliteinfra.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Users:     sqliteinfra.NewUserRepository(db),
			Employees: sqliteinfra.NewEmployeeRepository(db),
			Close:     func() { _ = db.Close() },
		}, nil
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Build wires every component from cfg. Redis and RabbitMQ are optional: when
// they are configured but unreachable the server still starts without them.
func Build(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.Users, c.Employees = store.Users, store.Employees
	c.closers = append(c.closers, store.Close)

	c.Hasher, err = helpers.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Tokens = helpers.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable; rate limiting disabled")
	} else if rdb != nil {
		c.Redis = rdb
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	if cfg.RabbitMQURL != "" && cfg.MailSendEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; welcome emails disabled")
		} else {
			c.Notifier = messaging.NewWelcomeNotifier(pub, cfg.AppName)
			c.closers = append(c.closers, pub.Close)
		}
	}

	return c, nil
}

func (c *Container) AuthService() *application.AuthService {
	return application.NewAuthService(c.Users, c.Hasher, c.Tokens, c.Notifier, c.fieldLogger())
}

func (c *Container) EmployeeService() *application.EmployeeService {
	return application.NewEmployeeService(c.Employees, c.fieldLogger())
}

// fieldLogger avoids handing a typed nil to the services.
func (c *Container) fieldLogger() logrus.FieldLogger {
	if c.Logger == nil {
		return nil
	}
	return c.Logger
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
