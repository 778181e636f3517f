package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type (
	Container struct {
		App   *App
		Token *Token
		Store *Store
		Mongo *Mongo
		DB    *DB
		HTTP  *HTTP
		Redis *Redis
	}

	App struct {
		Name string
		Env  string
	}

	// Token.Duration empty means tokens and cookies never expire.
	Token struct {
		Secret   string
		Duration string
	}

	Store struct {
		Driver string
	}

	Mongo struct {
		URI      string
		Database string
	}

	DB struct {
		Host          string
		Port          string
		User          string
		Password      string
		Name          string
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}
)

var (
	ErrMissingTokenSecret = errors.New("TOKEN_SECRET is required")
	ErrUnknownStoreDriver = errors.New("STORE_DRIVER must be one of mongo, postgres, memory")
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "registration_microservice"),
		Env:  os.Getenv("APP_ENV"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: os.Getenv("TOKEN_DURATION"),
	}
	if token.Secret == "" {
		return nil, ErrMissingTokenSecret
	}

	store := &Store{
		Driver: strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
	}
	switch store.Driver {
	case StoreMongo, StorePostgres, StoreMemory:
	default:
		return nil, ErrUnknownStoreDriver
	}

	mongo := &Mongo{
		URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGODB_DATABASE", "registration"),
	}

	db := &DB{
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "./internal/adapter/postgres/migrations"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	return &Container{
		App:   app,
		Token: token,
		Store: store,
		Mongo: mongo,
		DB:    db,
		HTTP:  http,
		Redis: redis,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
