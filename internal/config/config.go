package config

import (
	"os"
)

type Config struct {
	DatabaseURL string
	SourceDir   string // 数据源目录（库存/利润/订单 xlsx）
	OutputFile  string // 报表输出文件
	Port        string
	Environment string

	LogLevel  string
	LogFormat string // console | json

	// 管线策略开关（两个历史版本的行为差异）
	ProfitFormat string // decimal | percent
	DailyAggMode string // sum | mean
	CleanupMode  string // date | truncate
	ScheduleSpec string // cron 表达式（含秒）
}

func Load() *Config {
	// Default MySQL connection string
	defaultDSN := "root:root@tcp(127.0.0.1:3306)/daily_data?charset=utf8mb4&parseTime=True&loc=Local"

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDSN),
		SourceDir:   getEnv("SOURCE_DIR", "source"),
		OutputFile:  getEnv("OUTPUT_FILE", "mkddaily.xlsx"),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		ProfitFormat: getEnv("PROFIT_FORMAT", "decimal"),
		DailyAggMode: getEnv("DAILY_AGG_MODE", "sum"),
		CleanupMode:  getEnv("CLEANUP_MODE", "date"),
		ScheduleSpec: getEnv("SCHEDULE_SPEC", "0 0 7 * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
