package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/catalog/seed"
	config "github.com/DRSN-tech/frag-avenue/internal/cfg"
	v1Http "github.com/DRSN-tech/frag-avenue/internal/delivery/v1/http"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/frag-avenue/internal/infrastructure/minio"
	boltRepo "github.com/DRSN-tech/frag-avenue/internal/repository/bolt"
	"github.com/DRSN-tech/frag-avenue/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/frag-avenue/internal/repository/minio"
	"github.com/DRSN-tech/frag-avenue/internal/repository/pgdb"
	"github.com/DRSN-tech/frag-avenue/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/frag-avenue/internal/repository/redis"
	"github.com/DRSN-tech/frag-avenue/internal/store"
	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/DRSN-tech/frag-avenue/pkg/clients"
	"github.com/DRSN-tech/frag-avenue/pkg/closer"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/DRSN-tech/frag-avenue/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	initTimeout        = 10 * time.Second
	kafkaTopicTimeout  = 10 * time.Second
	sessionSweepPeriod = time.Minute
)

// App собирает зависимости витрины и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	cancel  context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (_ *App, err error) {
	baseCtx, cancel := context.WithCancel(context.Background())
	app := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0, log),
		cancel: cancel,
	}

	// при ошибке инициализации освобождаем то, что уже успели открыть
	defer func() {
		if err != nil {
			cancel()
			ctx, stop := context.WithTimeout(context.Background(), initTimeout)
			defer stop()
			if cErr := app.closer.Close(ctx); cErr != nil {
				log.Warnf("cleanup after failed init: %v", cErr)
			}
		}
	}()

	storage, err := app.initStorage()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cat, err := app.initCatalog()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	images, err := app.initImages()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	publisher, err := app.initPublisher()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	sessions := usecase.NewSessions(baseCtx, cat, storage, log)
	sessions.StartSweeper(cfg.Redis.SessionTTL, sessionSweepPeriod)
	app.closer.Add("sessions", sessions.Close)

	uc := v1Http.UseCases{
		Product:  usecase.NewProductUC(cat, images, log),
		Session:  usecase.NewSessionUC(sessions, cat, log),
		Auth:     usecase.NewAuthUC(sessions, cfg.Simulation, log),
		Checkout: usecase.NewCheckoutUC(sessions, cat, publisher, cfg.Simulation, log),
		Order:    usecase.NewOrderUC(sessions, cat, log),
	}

	r := chi.NewRouter()
	v1Http.NewRouter(r, cfg.Http, sessions.NewID, cfg.Redis.SessionTTL, log).Init(uc)
	app.httpSrv = v1Http.NewServer(r, cfg.Http)

	return app, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Http.ShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	// отменяем страницы всех сессий, отложенные задачи не должны пережить сервер
	a.cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("%v", err)
	}

	a.logger.Infof("Application shutdown complete")

	return appErr
}

func (a *App) initStorage() (store.Storage, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageBolt:
		kv, err := boltRepo.Open(a.cfg.Bolt)
		if err != nil {
			a.logger.Errorf(err, "failed to open bolt storage at %s", a.cfg.Bolt.Path)
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add("bolt", kv.Close)
		a.logger.Infof("session storage: bolt (%s)", a.cfg.Bolt.Path)

		return kv, nil

	case config.StorageRedis:
		client := clients.NewRedisClient(a.cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			a.logger.Errorf(err, "failed to connect to redis")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add("redis", client.Close)
		a.logger.Infof("session storage: redis (%s)", a.cfg.Redis.Addr)

		return redis.NewKVRepo(client, a.cfg.Redis), nil

	default:
		a.logger.Infof("session storage: memory")
		return memory.NewKVRepo(), nil
	}
}

func (a *App) initCatalog() (*catalog.Catalog, error) {
	products, reviews, err := a.seedData()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if a.cfg.Catalog.Source == config.CatalogPostgres {
		products, reviews, err = a.loadFromPostgres(products, reviews)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	cat, err := catalog.New(products, reviews)
	if err != nil {
		a.logger.Errorf(err, "invalid catalog")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.logger.Infof("catalog loaded: %d products, %d reviews", len(products), len(reviews))

	return cat, nil
}

func (a *App) seedData() ([]domain.Product, []domain.Review, error) {
	var (
		products []domain.Product
		err      error
	)
	if a.cfg.Catalog.SeedFile != "" {
		products, err = seed.ProductsFromFile(a.cfg.Catalog.SeedFile)
	} else {
		products, err = seed.Products()
	}
	if err != nil {
		a.logger.Errorf(err, "failed to read catalog seed")
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	reviews, err := seed.Reviews()
	if err != nil {
		a.logger.Errorf(err, "failed to read reviews seed")
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, reviews, nil
}

// loadFromPostgres поднимает схему, при необходимости заливает сид и читает каталог из БД.
func (a *App) loadFromPostgres(products []domain.Product, reviews []domain.Review) ([]domain.Product, []domain.Review, error) {
	db, err := initPGDB(a.logger, a.cfg)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("postgres", db.Close)

	loader := usecase.NewCatalogLoader(
		pgdb.NewProductRepo(db.Pool, converter.NewProductConverter()),
		pgdb.NewReviewRepo(db.Pool, converter.NewReviewConverter()),
		db.Pool,
		a.logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	if a.cfg.Catalog.SeedOnStart {
		if err := loader.Seed(ctx, products, reviews); err != nil {
			a.logger.Errorf(err, "failed to seed catalog")
			return nil, nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	products, reviews, err = loader.Load(ctx)
	if err != nil {
		a.logger.Errorf(err, "failed to load catalog from postgres")
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, reviews, nil
}

// initImages возвращает nil, если MinIO выключен: тогда отдаются только абсолютные ссылки.
func (a *App) initImages() (usecase.ImagesInfra, error) {
	if !a.cfg.Minio.Enabled {
		return nil, nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()
	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, a.cfg.Minio)

	return minioInfra.NewMinioInfrastructure(imageRepo, a.logger), nil
}

func (a *App) initPublisher() (usecase.OrderPublisher, error) {
	if !a.cfg.Kafka.Enabled {
		return nil, nil
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka producer", producer.Close)

	if a.cfg.Kafka.EnsureTopic {
		if err := producer.EnsureTopic(kafkaTopicTimeout); err != nil {
			a.logger.Errorf(err, "failed to ensure kafka topic %s", a.cfg.Kafka.Topic)
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return producer, nil
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(context.Background(), cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
