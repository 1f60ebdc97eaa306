package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Server struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Gemini struct {
	APIKey        string  `mapstructure:"apiKey"`
	ChatModel     string  `mapstructure:"chatModel"`
	AnalysisModel string  `mapstructure:"analysisModel"`
	Temperature   float64 `mapstructure:"temperature"`
}

type Rescore struct {
	Workers  int `mapstructure:"workers"`
	MinScore int `mapstructure:"minScore"`
}

type Config struct {
	Server  Server  `mapstructure:"server"`
	Gemini  Gemini  `mapstructure:"gemini"`
	Rescore Rescore `mapstructure:"rescore"`
}

func LoadConfig() *Config {
	viper.SetConfigFile("./config/config.yaml")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatal(err)
	}

	return &config
}
