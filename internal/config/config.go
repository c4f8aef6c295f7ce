package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
// Пока содержит только настройки генерации карты и логов; может расширяться.

type Config struct {
	Map MapConfig `yaml:"map"`
	Log LogConfig `yaml:"log"`
}

type MapConfig struct {
	Size int `yaml:"size"`
}

type LogConfig struct {
	Dir string `yaml:"dir"`
}

// GetSize возвращает размер карты с поддержкой fallback значений
func (m *MapConfig) GetSize() int {
	// Если размер задан в конфиге и больше 0, используем его
	if m.Size > 0 {
		return m.Size
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv("MEGAPOLIS_MAP_SIZE"); envVal != "" {
		if size, err := strconv.Atoi(envVal); err == nil && size > 0 {
			return size
		}
	}

	// Используем дефолтное значение — эталонная сетка 64x64
	return 64
}

// GetLogDir возвращает директорию логов с приоритетом: config -> env -> default
func (l *LogConfig) GetLogDir() string {
	if l.Dir != "" {
		return l.Dir
	}
	if envVal := os.Getenv("MEGAPOLIS_LOG_DIR"); envVal != "" {
		return envVal
	}
	return "logs"
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV MEGAPOLIS_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("MEGAPOLIS_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
