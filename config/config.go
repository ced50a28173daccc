// Package config holds process-wide configuration for the bot service,
// loaded from environment variables and an optional config file via viper.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the set of paths and defaults needed to load lexicon and
// letter-distribution data, plus service-level knobs.
type Config struct {
	DataPath                  string
	DefaultLexicon            string
	DefaultLetterDistribution string

	NatsURL        string
	CommandsSubj   string
	QueueGroup     string
	PublishPrefix  string
	WorkerCapacity int

	Debug bool
}

// Load reads configuration from the environment (prefix OMGBOT_) and an
// optional config file, falling back to sane defaults for local dev.
func Load(args []string) *Config {
	v := viper.New()
	v.SetEnvPrefix("omgbot")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("data_path", "./data")
	v.SetDefault("default_lexicon", "NWL20")
	v.SetDefault("default_letter_distribution", "English")
	v.SetDefault("nats_url", "nats://localhost:4222")
	v.SetDefault("commands_subj", "bot.commands")
	v.SetDefault("queue_group", "bot_queue")
	v.SetDefault("publish_prefix", "bot.publish_event.")
	v.SetDefault("worker_capacity", 32)
	v.SetDefault("debug", false)

	v.SetConfigName("omgbot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing config file is fine; env + defaults suffice

	return &Config{
		DataPath:                  v.GetString("data_path"),
		DefaultLexicon:            v.GetString("default_lexicon"),
		DefaultLetterDistribution: v.GetString("default_letter_distribution"),
		NatsURL:                   v.GetString("nats_url"),
		CommandsSubj:              v.GetString("commands_subj"),
		QueueGroup:                v.GetString("queue_group"),
		PublishPrefix:             v.GetString("publish_prefix"),
		WorkerCapacity:            v.GetInt("worker_capacity"),
		Debug:                     v.GetBool("debug"),
	}
}
