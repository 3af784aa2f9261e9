package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	MetricsPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	JWTSecret string

	UserAPIBaseURL string

	// stream names
	DecisionStream       string
	CreditAnalysisStream string
	NotificationStream   string
	ApprovedStream       string

	ConsumerGroup string
	ConsumerName  string

	// listener tuning
	BatchSize       int
	WaitSecs        int
	PollDelaySecs   int
	BackoffSecs     int
	ReclaimIdleSecs int
	RefCacheTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "worker-1"
	}

	return &Config{
		AppPort:     getenv("APP_PORT", "8080"),
		MetricsPort: getenv("METRICS_PORT", "9090"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loanflow"),
		MySQLUser: getenv("MYSQL_USER", "loanflow"),
		MySQLPass: getenv("MYSQL_PASS", "loanflow"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		JWTSecret: getenv("JWT_SECRET", ""),

		UserAPIBaseURL: getenv("USER_API_BASE_URL", "http://users:8081"),

		DecisionStream:       getenv("STREAM_DECISIONS", "loan-decisions"),
		CreditAnalysisStream: getenv("STREAM_CREDIT_ANALYSIS", "credit-analysis"),
		NotificationStream:   getenv("STREAM_NOTIFICATIONS", "status-notifications"),
		ApprovedStream:       getenv("STREAM_APPROVED", "approved-loans"),

		ConsumerGroup: getenv("CONSUMER_GROUP", "loanflow-workers"),
		ConsumerName:  getenv("CONSUMER_NAME", hostname),

		BatchSize:       getenvInt("LISTENER_BATCH_SIZE", 10),
		WaitSecs:        getenvInt("LISTENER_WAIT_SECONDS", 20),
		PollDelaySecs:   getenvInt("LISTENER_POLL_DELAY_SECONDS", 1),
		BackoffSecs:     getenvInt("LISTENER_BACKOFF_SECONDS", 5),
		ReclaimIdleSecs: getenvInt("LISTENER_RECLAIM_IDLE_SECONDS", 60),
		RefCacheTTLSecs: getenvInt("REF_CACHE_TTL_SECONDS", 600),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.DecisionStream == "" || c.CreditAnalysisStream == "" {
		return errors.New("missing stream names")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) ReclaimIdle() time.Duration {
	return time.Duration(c.ReclaimIdleSecs) * time.Second
}

func (c *Config) RefCacheTTL() time.Duration {
	return time.Duration(c.RefCacheTTLSecs) * time.Second
}
