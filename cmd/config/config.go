// Package config читает параметры запуска из флагов, переменных окружения и файла .env.
package config

import (
	"flag"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	FlagHost        string
	FlagPort        string
	FlagLogLevel    string
	EnableHTTPS     bool
	EnableMCP       bool
	TrustedSubnet   string
	CertificatePath = "server.crt"
	KeyPath         = "server.key"
	EnvFile         = ".env"
)

// ParseFlags заполняет параметры. Переменные окружения имеют приоритет над флагами;
// файл .env загружается до чтения окружения и не перезаписывает уже заданные переменные.
func ParseFlags() {
	// Отсутствие файла .env не является ошибкой.
	_ = loadEnvFile(EnvFile)

	flag.StringVar(&FlagHost, "a", "0.0.0.0", "host to listen on")
	flag.StringVar(&FlagPort, "p", "5000", "port to listen on")
	flag.StringVar(&FlagLogLevel, "l", "info", "log level")
	flag.BoolVar(&EnableHTTPS, "s", false, "serve HTTPS with a self-signed certificate")
	flag.BoolVar(&EnableMCP, "m", false, "expose the MCP endpoint")
	flag.StringVar(&TrustedSubnet, "t", "", "CIDR allowed to reach /debug/pprof")
	flag.Parse()

	applyEnv()
}

// loadEnvFile добавляет в окружение переменные из файла path.
func loadEnvFile(path string) error {
	return godotenv.Load(path)
}

func applyEnv() {
	if envHost := os.Getenv("HOST"); envHost != "" {
		FlagHost = envHost
	}

	if envPort := os.Getenv("PORT"); envPort != "" {
		FlagPort = envPort
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		FlagLogLevel = envLogLevel
	}

	if v, ok := envBool("ENABLE_HTTPS"); ok {
		EnableHTTPS = v
	}

	if v, ok := envBool("ENABLE_MCP"); ok {
		EnableMCP = v
	}

	if envSubnet := os.Getenv("TRUSTED_SUBNET"); envSubnet != "" {
		TrustedSubnet = envSubnet
	}
}

func envBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// Addr возвращает адрес для net.Listen.
func Addr() string {
	return net.JoinHostPort(FlagHost, FlagPort)
}
