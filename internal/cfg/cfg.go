package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Драйверы key-value хранилища сессий
const (
	StorageMemory = "memory"
	StorageBolt   = "bolt"
	StorageRedis  = "redis"
)

// Источники каталога
const (
	CatalogSeed     = "seed"
	CatalogPostgres = "postgres"
)

type Config struct {
	Http       *HTTPConfig
	Storage    *StorageCfg
	Redis      *RedisCfg
	Bolt       *BoltCfg
	Catalog    *CatalogCfg
	Db         *PGDBCfg // nil, если каталог читается из встроенного сида
	Minio      *MinIOCfg
	Kafka      *KafkaCfg
	Simulation *SimulationCfg
}

type HTTPConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	SwaggerURL      string
	SecureCookie    bool
}

type StorageCfg struct {
	Driver string
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	SessionTTL  time.Duration // 0 означает без срока жизни
}

type BoltCfg struct {
	Path        string
	Bucket      string
	OpenTimeout time.Duration
}

type CatalogCfg struct {
	Source      string
	SeedFile    string // пустая строка означает встроенный сид
	SeedOnStart bool   // заливать сид в postgres при старте
}

type PGDBCfg struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
	MaxConns       int32
	ConnectTimeout time.Duration
}

type MinIOCfg struct {
	Enabled           bool
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Бакет с изображениями товаров
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	PresignTTL        time.Duration // Время жизни подписанной ссылки
}

type KafkaCfg struct {
	Enabled           bool
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
	EnsureTopic       bool
}

// SimulationCfg — задержки имитируемых сетевых операций
type SimulationCfg struct {
	AuthDelay        time.Duration
	ProfileSaveDelay time.Duration
	CheckoutDelay    time.Duration
	Jitter           float64
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	storage, err := loadStorageCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	bolt, err := loadBoltCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var db *PGDBCfg
	if catalog.Source == CatalogPostgres {
		db, err = loadPGDBCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	simulation, err := loadSimulationCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:       http,
		Storage:    storage,
		Redis:      redis,
		Bolt:       bolt,
		Catalog:    catalog,
		Db:         db,
		Minio:      minio,
		Kafka:      kafka,
		Simulation: simulation,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort            = "8080"
		defaultReadTimeout     = 5 * time.Second
		defaultWriteTimeout    = 10 * time.Second
		defaultIdleTimeout     = 60 * time.Second
		defaultShutdownTimeout = 10 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		log.Errorf(err, "invalid SHUTDOWN_TIMEOUT")
		return nil, err
	}

	secureCookie, err := parseBoolEnv("SESSION_COOKIE_SECURE", false)
	if err != nil {
		log.Errorf(err, "invalid SESSION_COOKIE_SECURE")
		return nil, err
	}

	return &HTTPConfig{
		Port:            port,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		IdleTimeout:     idleTimeout,
		ShutdownTimeout: shutdownTimeout,
		SwaggerURL:      getEnvOrDefault("SWAGGER_URL", "http://localhost:"+port+"/swagger/doc.json"),
		SecureCookie:    secureCookie,
	}, nil
}

func loadStorageCfg(log logger.Logger) (*StorageCfg, error) {
	driver := strings.ToLower(getEnvOrDefault("STORAGE_DRIVER", StorageMemory))

	switch driver {
	case StorageMemory, StorageBolt, StorageRedis:
		return &StorageCfg{Driver: driver}, nil
	default:
		err := e.Wrap(driver, e.ErrUnknownStorageDriver)
		log.Errorf(err, "invalid STORAGE_DRIVER")
		return nil, err
	}
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultSessionTTL   = 30 * 24 * time.Hour
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	sessionTTL, err := parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		log.Errorf(err, "invalid SESSION_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		SessionTTL:  sessionTTL,
	}, nil
}

func loadBoltCfg(log logger.Logger) (*BoltCfg, error) {
	const (
		defaultPath        = "data/frag_avenue.db"
		defaultBucket      = "sessions"
		defaultOpenTimeout = time.Second
	)

	openTimeout, err := parseDurationEnv("BOLT_OPEN_TIMEOUT", defaultOpenTimeout)
	if err != nil {
		log.Errorf(err, "invalid BOLT_OPEN_TIMEOUT")
		return nil, err
	}

	return &BoltCfg{
		Path:        getEnvOrDefault("BOLT_PATH", defaultPath),
		Bucket:      getEnvOrDefault("BOLT_BUCKET", defaultBucket),
		OpenTimeout: openTimeout,
	}, nil
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	source := strings.ToLower(getEnvOrDefault("CATALOG_SOURCE", CatalogSeed))
	if source != CatalogSeed && source != CatalogPostgres {
		err := e.Wrap(source, e.ErrUnknownCatalogSource)
		log.Errorf(err, "invalid CATALOG_SOURCE")
		return nil, err
	}

	seedOnStart, err := parseBoolEnv("CATALOG_SEED_ON_START", true)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_SEED_ON_START")
		return nil, err
	}

	return &CatalogCfg{
		Source:      source,
		SeedFile:    getEnv("CATALOG_SEED_FILE"),
		SeedOnStart: seedOnStart,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost           = "localhost"
		defaultPort           = "5432"
		defaultSSLMode        = "disable"
		defaultMigrationsPath = "db/migrations"
		defaultMaxConns       = 4
		defaultConnectTimeout = 5 * time.Second
	)

	maxConns, err := parseIntEnv("POSTGRES_MAX_CONNS", defaultMaxConns)
	if err != nil || maxConns < 1 {
		err = e.Wrap("POSTGRES_MAX_CONNS", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid POSTGRES_MAX_CONNS")
		return nil, err
	}

	connectTimeout, err := parseDurationEnv("POSTGRES_CONNECT_TIMEOUT", defaultConnectTimeout)
	if err != nil {
		log.Errorf(err, "invalid POSTGRES_CONNECT_TIMEOUT")
		return nil, err
	}

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:           getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:           getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:           user,
		Password:       password,
		DBName:         dbName,
		SSLMode:        getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MigrationsPath: getEnvOrDefault("POSTGRES_MIGRATIONS_PATH", defaultMigrationsPath),
		MaxConns:       int32(maxConns),
		ConnectTimeout: connectTimeout,
	}, nil
}

// loadMinIOCfg: без MINIO_ENDPOINT изображения отдаются по исходным ссылкам.
func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultBucket     = "products"
		defaultPresignTTL = 15 * time.Minute
	)

	useSSL, err := parseBoolEnv("MINIO_USE_SSL", false)
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	presignTTL, err := parseDurationEnv("MINIO_PRESIGN_TTL", defaultPresignTTL)
	if err != nil {
		log.Errorf(err, "invalid MINIO_PRESIGN_TTL")
		return nil, err
	}

	endpoint := getEnv("MINIO_ENDPOINT")

	return &MinIOCfg{
		Enabled:           endpoint != "",
		MinioEndpoint:     endpoint,
		BucketName:        getEnvOrDefault("BUCKET_NAME", defaultBucket),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		PresignTTL:        presignTTL,
	}, nil
}

// loadKafkaCfg: без KAFKA_BROKERS события о заказах не публикуются.
func loadKafkaCfg(log logger.Logger) (*KafkaCfg, error) {
	const (
		defaultTopic             = "frag-avenue.orders"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	var brokers []string
	if brokerStr := getEnv("KAFKA_BROKERS"); brokerStr != "" {
		for _, b := range strings.Split(brokerStr, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		log.Errorf(err, "invalid KAFKA_PARTITIONS")
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		log.Errorf(err, "invalid REPLICATION_FACTOR")
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	ensureTopic, err := parseBoolEnv("KAFKA_ENSURE_TOPIC", true)
	if err != nil {
		log.Errorf(err, "invalid KAFKA_ENSURE_TOPIC")
		return nil, err
	}

	return &KafkaCfg{
		Enabled:           len(brokers) > 0,
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
		EnsureTopic:       ensureTopic,
	}, nil
}

func loadSimulationCfg(log logger.Logger) (*SimulationCfg, error) {
	const (
		defaultAuthDelay        = 2 * time.Second
		defaultProfileSaveDelay = 1500 * time.Millisecond
		defaultCheckoutDelay    = 2500 * time.Millisecond
		defaultJitter           = 0.0
	)

	authDelay, err := parseDurationEnv("SIM_AUTH_DELAY", defaultAuthDelay)
	if err != nil {
		log.Errorf(err, "invalid SIM_AUTH_DELAY")
		return nil, err
	}

	profileSaveDelay, err := parseDurationEnv("SIM_PROFILE_SAVE_DELAY", defaultProfileSaveDelay)
	if err != nil {
		log.Errorf(err, "invalid SIM_PROFILE_SAVE_DELAY")
		return nil, err
	}

	checkoutDelay, err := parseDurationEnv("SIM_CHECKOUT_DELAY", defaultCheckoutDelay)
	if err != nil {
		log.Errorf(err, "invalid SIM_CHECKOUT_DELAY")
		return nil, err
	}

	jitter := defaultJitter
	if v := getEnv("SIM_JITTER"); v != "" {
		jitter, err = strconv.ParseFloat(v, 64)
		if err != nil || jitter < 0 {
			log.Errorf(e.ErrIncorrectEnvVariable, "invalid SIM_JITTER")
			return nil, e.Wrap("SIM_JITTER", e.ErrIncorrectEnvVariable)
		}
	}

	return &SimulationCfg{
		AuthDelay:        authDelay,
		ProfileSaveDelay: profileSaveDelay,
		CheckoutDelay:    checkoutDelay,
		Jitter:           jitter,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return boolValue, nil
}
