package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Vocab    VocabConfig  `mapstructure:"vocab"`
	Text     TextConfig   `mapstructure:"text"`
	Server   ServerConfig `mapstructure:"server"`
}

type VocabConfig struct {
	Delimiter         string `mapstructure:"delimiter"`
	TermColumn        string `mapstructure:"term_column"`
	PinyinColumn      string `mapstructure:"pinyin_column"`
	TranslationColumn string `mapstructure:"translation_column"`
	Normalize         bool   `mapstructure:"normalize"`
}

type TextConfig struct {
	Normalize bool `mapstructure:"normalize"`
}

type ServerConfig struct {
	ListenAddr      string   `mapstructure:"listen_addr"`
	MaxTextBytes    int      `mapstructure:"max_text_bytes"`
	RequestTimeout  int      `mapstructure:"request_timeout"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Vocab: VocabConfig{
			Delimiter:         ",",
			TermColumn:        "Mandarin",
			PinyinColumn:      "Pinyin",
			TranslationColumn: "German",
			Normalize:         false,
		},
		Text: TextConfig{
			Normalize: false,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MaxTextBytes:    64 * 1024,
			RequestTimeout:  10,
			ShutdownTimeout: 30,
			AllowedOrigins:  []string{"*"},
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("vocab-delimiter", defaults.Vocab.Delimiter, "Field delimiter of vocabulary files")
	fs.String("vocab-term-column", defaults.Vocab.TermColumn, "Header of the Mandarin term column")
	fs.String("vocab-pinyin-column", defaults.Vocab.PinyinColumn, "Header of the numbered pinyin column")
	fs.String("vocab-translation-column", defaults.Vocab.TranslationColumn, "Header of the translation column")
	fs.Bool("vocab-normalize", defaults.Vocab.Normalize, "Apply Unicode NFC to pinyin fields before conversion")
	fs.Bool("text-normalize", defaults.Text.Normalize, "Apply Unicode NFC to text input before conversion")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum text size accepted by POST /convert")
	fs.Int("server-request-timeout", defaults.Server.RequestTimeout, "Per-request timeout in seconds")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown timeout in seconds")
	fs.StringSlice("server-allowed-origins", defaults.Server.AllowedOrigins, "CORS allowed origins")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("PINYINTONES")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("pinyintones")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("vocab.delimiter", c.Vocab.Delimiter)
	v.SetDefault("vocab.term_column", c.Vocab.TermColumn)
	v.SetDefault("vocab.pinyin_column", c.Vocab.PinyinColumn)
	v.SetDefault("vocab.translation_column", c.Vocab.TranslationColumn)
	v.SetDefault("vocab.normalize", c.Vocab.Normalize)
	v.SetDefault("text.normalize", c.Text.Normalize)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("server.allowed_origins", c.Server.AllowedOrigins)
}

// flagKeys maps config keys to the flag names registered by RegisterFlags.
var flagKeys = map[string]string{
	"log_level":                "log-level",
	"vocab.delimiter":          "vocab-delimiter",
	"vocab.term_column":        "vocab-term-column",
	"vocab.pinyin_column":      "vocab-pinyin-column",
	"vocab.translation_column": "vocab-translation-column",
	"vocab.normalize":          "vocab-normalize",
	"text.normalize":           "text-normalize",
	"server.listen_addr":       "server-listen-addr",
	"server.max_text_bytes":    "server-max-text-bytes",
	"server.request_timeout":   "server-request-timeout",
	"server.shutdown_timeout":  "server-shutdown-timeout",
	"server.allowed_origins":   "server-allowed-origins",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}
