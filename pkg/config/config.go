package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-provided setting. It is loaded once at
// startup and passed around explicitly; nothing mutates it afterwards.
type Config struct {
	DBUsuario string
	DBSenha   string
	DBHost    string
	DBPorta   string
	DBNome    string

	TituloAPI string
	Porta     string

	URLBaseAPIProduto string

	ChaveSegurancaJWT   string
	TempoExpiracaoToken time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the variables directly
	_ = godotenv.Load()

	cfg := &Config{
		DBUsuario:         os.Getenv("USUARIO_BD"),
		DBSenha:           os.Getenv("SENHA_BD"),
		DBHost:            os.Getenv("HOST_BD"),
		DBPorta:           os.Getenv("PORTA_BD"),
		DBNome:            os.Getenv("NOME_BD"),
		TituloAPI:         os.Getenv("TITULO_API"),
		Porta:             os.Getenv("PORT"),
		URLBaseAPIProduto: os.Getenv("URL_BASE_API_PRODUTO"),
		ChaveSegurancaJWT: os.Getenv("CHAVE_SEGURANCA_JWT"),
	}

	required := map[string]string{
		"USUARIO_BD":           cfg.DBUsuario,
		"SENHA_BD":             cfg.DBSenha,
		"HOST_BD":              cfg.DBHost,
		"PORTA_BD":             cfg.DBPorta,
		"NOME_BD":              cfg.DBNome,
		"URL_BASE_API_PRODUTO": cfg.URLBaseAPIProduto,
		"CHAVE_SEGURANCA_JWT":  cfg.ChaveSegurancaJWT,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("variável de ambiente obrigatória não definida: %s", name)
		}
	}

	minutos := 30
	if raw := os.Getenv("TEMPO_EXPIRACAO_TOKEN_MINUTOS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("TEMPO_EXPIRACAO_TOKEN_MINUTOS inválido: %q", raw)
		}
		minutos = parsed
	}
	cfg.TempoExpiracaoToken = time.Duration(minutos) * time.Minute

	if cfg.Porta == "" {
		cfg.Porta = "8000"
	}
	if cfg.TituloAPI == "" {
		cfg.TituloAPI = "API de Favoritos"
	}

	return cfg, nil
}

// DSN builds the postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUsuario, c.DBSenha, c.DBNome, c.DBPorta)
}
