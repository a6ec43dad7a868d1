package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the file paths, locale and reference date for one run.
// Values come from the environment (optionally via a .env file); the CLI
// flags override them after Get.
type Config struct {
	DataFile      string
	ImportFile    string
	ReportFile    string
	ReferenceDate string // DD-MM-YYYY; empty means the current date
	Locale        string
}

var instance *Config
var once sync.Once

func Get() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.WithError(err).Debug("No .env file loaded")
		}

		instance = &Config{
			DataFile:      getEnv("SHIFTBOT_DATA_FILE", "shiftbot_data.txt"),
			ImportFile:    getEnv("SHIFTBOT_IMPORT_FILE", "employees.txt"),
			ReportFile:    getEnv("SHIFTBOT_REPORT_FILE", "report.txt"),
			ReferenceDate: getEnv("SHIFTBOT_REFERENCE_DATE", ""),
			Locale:        getEnv("SHIFTBOT_LOCALE", "en"),
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
