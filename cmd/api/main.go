package main

import (
	"MatchEngineApi/internal/data"
	"MatchEngineApi/internal/gamehub"
	"MatchEngineApi/internal/jsonlog"
	"MatchEngineApi/internal/mailer"
	"context"
	"database/sql"
	"errors"
	"expvar"
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type config struct {
	version string
	port    int
	env     string
	db      struct {
		dsn          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  string
	}
	limiter struct {
		rps     float64
		burst   int
		enabled bool
	}
	smtp struct {
		host      string
		port      int
		username  string
		password  string
		sender    string
		recipient string
	}
	cors struct {
		trustedOrigins []string
	}
	auth struct {
		tokenHash string
	}
	engine struct {
		seed            uint64
		applyImportance bool
		workers         int
	}
}

type application struct {
	logger *jsonlog.Logger
	config config
	models data.Models
	mailer mailer.Mailer
	hub    *gamehub.Hub
	wg     sync.WaitGroup
}

func main() {
	var cfg config

	envErr := godotenv.Load()

	// Server Config
	cfg.version = "1.0.0"
	flag.IntVar(&cfg.port, "port", envInt("MATCHENGINE_PORT", 8008), "http server port")
	flag.StringVar(&cfg.env, "env", envString("MATCHENGINE_ENV", "development"),
		"Environment (development|staging|production)")

	// Database Config
	flag.StringVar(&cfg.db.dsn, "db-dsn", envString("MATCHENGINE_DB_DSN", ""), "DB connection string")
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.IntVar(&cfg.db.maxIdleConns, "db-max-idle-conns", 25, "PostgreSQL max idle connections")
	flag.StringVar(&cfg.db.maxIdleTime, "db-max-idle-time", "15m",
		"PostgreSQL max connection idle time")

	// Limiter Config
	flag.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	// SMTP Config
	flag.StringVar(&cfg.smtp.host, "smtp-host", envString("MATCHENGINE_SMTP_HOST",
		"sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", envInt("MATCHENGINE_SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", envString("MATCHENGINE_SMTP_USERNAME", ""),
		"SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", envString("MATCHENGINE_SMTP_PASSWORD", ""),
		"SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "MatchEngine <no-reply@matchengine.dev>",
		"SMTP sender")
	flag.StringVar(&cfg.smtp.recipient, "smtp-report-recipient",
		envString("MATCHENGINE_REPORT_RECIPIENT", ""), "Matchday report recipient (empty disables)")

	// CORS Config
	flag.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		origins := strings.Fields(val)
		if i := slices.Index(origins, "*"); i != -1 {
			return errors.New("cannot set CORS trusted origin to \"*\" with authorization header" +
				" in cross-origin requests")
		}
		cfg.cors.trustedOrigins = origins
		return nil
	})

	// Auth Config
	flag.StringVar(&cfg.auth.tokenHash, "auth-token-hash", envString("MATCHENGINE_TOKEN_HASH", ""),
		"bcrypt hash of the API token required for simulations (empty disables auth)")

	// Engine Config
	flag.Uint64Var(&cfg.engine.seed, "engine-seed", 0,
		"Base seed for simulations without a request seed (0 means unseeded)")
	flag.BoolVar(&cfg.engine.applyImportance, "engine-apply-importance", false,
		"Fold match importance into the clutch multiplier")
	flag.IntVar(&cfg.engine.workers, "engine-matchday-workers", runtime.NumCPU(),
		"Matches simulated at once during a matchday")

	// Version
	displayVersion := flag.Bool("version", false, "Show API version and immediately exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version: %s\n", cfg.version)
		os.Exit(0)
	}

	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)
	if envErr != nil {
		logger.PrintInfo("no .env file loaded, using process environment", nil)
	}
	if cfg.auth.tokenHash == "" {
		logger.PrintInfo("api token auth disabled", map[string]string{"env": cfg.env})
	}

	db, err := openDB(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	expvar.NewString("version").Set(cfg.version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("database", expvar.Func(func() any {
		return db.Stats()
	}))
	expvar.Publish("timestamp", expvar.Func(func() any {
		return time.Now().Unix()
	}))

	app := &application{
		logger: logger,
		config: cfg,
		models: data.NewModels(db),
		hub:    gamehub.NewHub(logger),
		mailer: mailer.New(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password,
			cfg.smtp.sender),
	}

	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

func openDB(cfg config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.db.maxOpenConns)
	db.SetMaxIdleConns(cfg.db.maxIdleConns)
	duration, err := time.ParseDuration(cfg.db.maxIdleTime)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxIdleTime(duration)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func envString(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return i
}
