package config

import (
	_ "embed"
	"strings"
)

const (
	CurrentEnvProd    = "prod"
	CurrentEnvStaging = "staging"
)

//go:embed current-env
var CurrentEnv string

func init() {
	CurrentEnv = strings.TrimSpace(CurrentEnv)

	if CurrentEnv != CurrentEnvProd && CurrentEnv != CurrentEnvStaging {
		panic("invalid environment")
	}
}

// Common struct for values that differ between staging and production environments
type Differs[T any] struct {
	Staging T `yaml:"staging" comment:"Staging value" validate:"required"`
	Prod    T `yaml:"prod" comment:"Production value" validate:"required"`
}

func (d *Differs[T]) Parse() T {
	if CurrentEnv == CurrentEnvProd {
		return d.Prod
	} else if CurrentEnv == CurrentEnvStaging {
		return d.Staging
	} else {
		panic("invalid environment")
	}
}

type Config struct {
	DiscordAuth DiscordAuth `yaml:"discord_auth" validate:"required"`
	Sites       Sites       `yaml:"sites" validate:"required"`
	Channels    Channels    `yaml:"channels" validate:"required"`
	Servers     Servers     `yaml:"servers" validate:"required"`
	Meta        Meta        `yaml:"meta" validate:"required"`
}

type DiscordAuth struct {
	Token        string `yaml:"token" comment:"Discord bot token" validate:"required"`
	ClientID     string `yaml:"client_id" default:"" comment:"Discord Client ID" validate:"required"`
	ClientSecret string `yaml:"client_secret" comment:"Discord Client Secret" validate:"required"`
}

type Sites struct {
	Frontend Differs[string] `yaml:"frontend" default:"https://litten.site" comment:"Frontend URL" validate:"required"`
	API      Differs[string] `yaml:"api" default:"https://api.litten.site" comment:"API URL" validate:"required"`
	CDN      string          `yaml:"cdn" default:"https://cdn.litten.site" comment:"CDN URL" validate:"required"`
}

type Channels struct {
	BotLogs  string `yaml:"bot_logs" default:"0" comment:"Bot Logs Channel" validate:"required"`
	ModLogs  string `yaml:"mod_logs" default:"0" comment:"Mod Logs Channel" validate:"required"`
	VoteLogs string `yaml:"vote_logs" default:"0" comment:"Vote Logs Channel" validate:"required"`
}

type Servers struct {
	Main string `yaml:"main" default:"0" comment:"Main Server ID" validate:"required"`
}

type Meta struct {
	PostgresURL    string          `yaml:"postgres_url" default:"postgresql:///litten" comment:"Postgres URL" validate:"required"`
	RedisURL       string          `yaml:"redis_url" default:"redis://localhost:6379" comment:"Redis URL" validate:"required"`
	Port           Differs[string] `yaml:"port" default:":8081" comment:"Port to run the server on" validate:"required"`
	VulgarList     []string        `yaml:"vulgar_list" default:"fuck,shit,cunt" validate:"required"`
	UrgentMentions string          `yaml:"urgent_mentions" default:"" comment:"Urgent mentions" validate:"required"`
}
