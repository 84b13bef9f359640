// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env         string `yaml:"env" env:"GYM_ENV" env-default:"local"`
	StoragePath string `yaml:"storage_path" env:"GYM_STORAGE_PATH" env-default:"gym.db"`
}

// MustLoad загружает конфиг из YAML-файла по пути CONFIG_PATH.
// Если CONFIG_PATH не задан, настройки читаются из окружения со значениями
// по умолчанию: настольное приложение должно стартовать без единого файла.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from env: %s", err)
		}
		return &cfg
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StoragePath: %s\n",
		c.Env,
		c.StoragePath,
	)
}
