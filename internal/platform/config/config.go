// Package config builds the explicit configuration structs the rest of the
// service receives. All ambient environment access happens here so main
// stays lean and components never read the environment themselves.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "veriface/pkg/platform/strings"
)

// Config is the full service configuration.
type Config struct {
	Addr        string
	Database    DatabaseConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Recognition RecognitionConfig
	SMTP        SMTPConfig
	Capture     CaptureConfig
	Pipeline    PipelineConfig
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RecognitionConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type SMTPConfig struct {
	Addr   string
	Sender string
}

type CaptureConfig struct {
	// Command is the capture binary invoked to take the on-site photo.
	// Empty means no camera is attached and the output path must already
	// hold an image (useful for development and tests).
	Command    string
	OutputPath string
	// EnrollmentBucket is the blob bucket holding reference images keyed
	// by user id.
	EnrollmentBucket string
}

// PipelineConfig carries the orchestrator tunables.
type PipelineConfig struct {
	SimilarityThreshold float64
	WorkerConcurrency   int
	RunLockTTL          time.Duration
}

// FromEnv builds a Config from environment variables with development
// defaults.
func FromEnv() Config {
	return Config{
		Addr: envString("VERIFACE_ADDR", ":8080"),
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", 5),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: envList("KAFKA_BROKERS"),
			Topic:   envString("KAFKA_ATTENDANCE_TOPIC", "attendance.events"),
		},
		Recognition: RecognitionConfig{
			BaseURL: os.Getenv("RECOGNITION_URL"),
			APIKey:  os.Getenv("RECOGNITION_API_KEY"),
			Timeout: envDuration("RECOGNITION_TIMEOUT", 30*time.Second),
		},
		SMTP: SMTPConfig{
			Addr:   envString("SMTP_ADDR", "localhost:25"),
			Sender: os.Getenv("SMTP_SENDER"),
		},
		Capture: CaptureConfig{
			Command:          os.Getenv("CAPTURE_COMMAND"),
			OutputPath:       envString("CAPTURE_OUTPUT_PATH", "/tmp/veriface-capture.jpg"),
			EnrollmentBucket: os.Getenv("ENROLLMENT_BUCKET"),
		},
		Pipeline: PipelineConfig{
			SimilarityThreshold: envFloat("SIMILARITY_THRESHOLD", 75.0),
			WorkerConcurrency:   envInt("WORKER_CONCURRENCY", 4),
			RunLockTTL:          envDuration("RUN_LOCK_TTL", 5*time.Minute),
		},
	}
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// envInt reads an environment variable as a positive integer, falling back
// to the default when unset or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 && f <= 100 {
		return f
	}
	return defaultVal
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return defaultVal
}

func envList(key string) []string {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	out := platformstrings.DedupeAndTrim(strings.Split(s, ","))
	if len(out) == 0 {
		return nil
	}
	return out
}
