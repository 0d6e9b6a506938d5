package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server ServerConfig
	JWT    JWTConfig
	Quiz   QuizConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// JWTConfig содержит настройки JWT
type JWTConfig struct {
	// Secret — ключ подписи токенов (HS256). Обязателен.
	Secret string `mapstructure:"secret"`
	// ExpirationHrs — время жизни токена в часах. По умолчанию 24.
	ExpirationHrs int `mapstructure:"expirationHrs"`
}

// QuizConfig содержит настройки викторины
type QuizConfig struct {
	// MaxPlayers — максимальное количество участников в одной викторине.
	// По умолчанию 8.
	MaxPlayers int `mapstructure:"maxPlayers"`
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.readtimeout", 10)
	vip.SetDefault("server.writetimeout", 10)
	vip.SetDefault("jwt.expirationHrs", 24)
	vip.SetDefault("quiz.maxPlayers", 8)

	// Привязываем переменные окружения ЯВНО
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.readtimeout", "SERVER_READTIMEOUT")
	vip.BindEnv("server.writetimeout", "SERVER_WRITETIMEOUT")
	vip.BindEnv("jwt.secret", "JWT_SECRET")
	vip.BindEnv("jwt.expirationHrs", "JWT_EXPIRATIONHRS")
	vip.BindEnv("quiz.maxPlayers", "QUIZ_MAXPLAYERS")

	// Файл конфигурации опционален: переменных окружения достаточно
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации %q не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации %q: %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Проверка обязательных параметров
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is required in config (check JWT_SECRET env var)")
	}

	return &cfg, nil
}
