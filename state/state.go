package state

import (
	"context"
	"os"
	"reflect"
	"strings"

	"litten/config"

	"github.com/bwmarrin/discordgo"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	Pool      *pgxpool.Pool
	Redis     *redis.Client
	Discord   *discordgo.Session
	Logger    *zap.SugaredLogger
	Context   = context.Background()
	Validator = validator.New()

	Config *config.Config
)

func nonVulgar(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		value := strings.ToLower(fl.Field().String())

		for _, v := range Config.Meta.VulgarList {
			if strings.Contains(value, v) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func noSpaces(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		return !strings.Contains(fl.Field().String(), " ")
	default:
		return false
	}
}

func isHttps(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		return strings.HasPrefix(fl.Field().String(), "https://")
	default:
		return false
	}
}

func Setup() {
	Logger = CreateZap()

	config.GenConfig()

	cfg, err := os.ReadFile("config.yaml")

	if err != nil {
		panic(err)
	}

	err = yaml.Unmarshal(cfg, &Config)

	if err != nil {
		panic(err)
	}

	Validator.RegisterValidation("nonvulgar", nonVulgar)
	Validator.RegisterValidation("notblank", validators.NotBlank)
	Validator.RegisterValidation("nospaces", noSpaces)
	Validator.RegisterValidation("https", isHttps)

	err = Validator.Struct(Config)

	if err != nil {
		panic("configError: " + err.Error())
	}

	Pool, err = pgxpool.New(Context, Config.Meta.PostgresURL)

	if err != nil {
		panic(err)
	}

	rOptions, err := redis.ParseURL(Config.Meta.RedisURL)

	if err != nil {
		panic(err)
	}

	Redis = redis.NewClient(rOptions)

	Discord, err = discordgo.New("Bot " + Config.DiscordAuth.Token)

	if err != nil {
		panic(err)
	}

	Discord.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	go func() {
		err := Discord.Open()
		if err != nil {
			panic(err)
		}

		err = Discord.UpdateWatchStatus(0, Config.Sites.Frontend.Parse())

		if err != nil {
			panic(err)
		}
	}()
}
