package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort          = 8080
	DefaultHost          = "127.0.0.1"
	DefaultLogLevel      = "info"
	DefaultMaxFileSize   = 100 * 1024 * 1024 // 100MB
	DefaultOpenAITimeout = 30                // seconds

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the legal analyzer MCP server
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Document configuration
	DocumentDirectory string
	MaxFileSize       int64 // Maximum PDF file size in bytes

	// Optional model provider configuration. Empty API key disables the
	// statistical-model collaborators; the rule-based core carries on alone.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout int

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:              ModeStdio, // Default to stdio mode for MCP compatibility
		Host:              DefaultHost,
		Port:              DefaultPort,
		DocumentDirectory: currentDir,
		MaxFileSize:       DefaultMaxFileSize,
		OpenAITimeout:     DefaultOpenAITimeout,
		Version:           "1.0.0",
		ServerName:        "mcp-legal-analyzer",
		LogLevel:          DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.DocumentDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.DocumentDirectory); err == nil {
			cfg.DocumentDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("MCP_LEGAL")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("dir", cfg.DocumentDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("openai_api_key", cfg.OpenAIAPIKey)
	viper.SetDefault("openai_base_url", cfg.OpenAIBaseURL)
	viper.SetDefault("openai_model", cfg.OpenAIModel)
	viper.SetDefault("openai_timeout", cfg.OpenAITimeout)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("dir", cfg.DocumentDirectory, "Directory containing documents to analyze")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum document file size in bytes")
	pflag.String("openai-api-key", cfg.OpenAIAPIKey, "OpenAI API key enabling statistical model collaborators")
	pflag.String("openai-base-url", cfg.OpenAIBaseURL, "Base URL for OpenAI-compatible endpoints")
	pflag.String("openai-model", cfg.OpenAIModel, "Model name for the OpenAI provider")
	pflag.Int("openai-timeout", cfg.OpenAITimeout, "Timeout in seconds per model call")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("openai_api_key", pflag.Lookup("openai-api-key"))
	_ = viper.BindPFlag("openai_base_url", pflag.Lookup("openai-base-url"))
	_ = viper.BindPFlag("openai_model", pflag.Lookup("openai-model"))
	_ = viper.BindPFlag("openai_timeout", pflag.Lookup("openai-timeout"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nMCP Legal Analyzer - A Model Context Protocol server for legal document analysis\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # stdio mode, rule-based analysis only\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/contracts         # stdio mode with document directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --openai-api-key=sk-...          # with statistical model collaborators\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server --port=8081        # server mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_MODE             Server mode\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_HOST             Server host\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_PORT             Server port\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_DIR              Document directory\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_LOGLEVEL         Log level\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_MAXFILESIZE      Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_OPENAI_API_KEY   OpenAI API key\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_OPENAI_BASE_URL  OpenAI-compatible base URL\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_OPENAI_MODEL     Model name\n")
		fmt.Fprintf(os.Stderr, "  MCP_LEGAL_OPENAI_TIMEOUT   Model call timeout (seconds)\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.DocumentDirectory = viper.GetString("dir")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.OpenAIAPIKey = viper.GetString("openai_api_key")
	cfg.OpenAIBaseURL = viper.GetString("openai_base_url")
	cfg.OpenAIModel = viper.GetString("openai_model")
	cfg.OpenAITimeout = viper.GetInt("openai_timeout")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.DocumentDirectory == "" {
		return errors.New("document directory cannot be empty")
	}

	if _, err := os.Stat(c.DocumentDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.DocumentDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create document directory %s: %w", c.DocumentDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access document directory %s: %w", c.DocumentDirectory, err)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if c.OpenAITimeout <= 0 {
		return errors.New("model call timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// ModelsEnabled returns true if the statistical model provider is configured
func (c *Config) ModelsEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// String returns a string representation of the configuration. The API key
// is deliberately omitted.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, DocumentDirectory: %s, LogLevel: %s, MaxFileSize: %d, ModelsEnabled: %t}",
		c.Mode, c.Host, c.Port, c.DocumentDirectory, c.LogLevel, c.MaxFileSize, c.ModelsEnabled())
}

// IsServerMode returns true if the server is running in HTTP server mode
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
