package main

import (
	"net/http"
	"strings"
	"time"

	"litten/api"
	"litten/constants"
	"litten/docs"
	"litten/migrations"
	"litten/notifications"
	"litten/ratelimit"
	"litten/routes/bots"
	"litten/routes/list"
	"litten/routes/partners"
	"litten/routes/staff"
	"litten/routes/users"
	"litten/state"
	"litten/zapchi"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var openapi []byte

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// limit body to 10mb
		r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE")

		if r.Method == "OPTIONS" {
			w.Write([]byte{})
			return
		}

		w.Header().Set("Content-Type", "application/json")

		next.ServeHTTP(w, r)
	})
}

// Votes are the one write endpoint users hammer, so they get a much
// tighter bucket than everything else
func bucketFor(r *http.Request) ratelimit.ModeratedBucket {
	if r.Method == "POST" && strings.HasSuffix(r.URL.Path, "/votes") {
		return ratelimit.ModeratedBucket{BucketName: "vote", Requests: 10, Time: 5 * time.Minute}
	}

	return ratelimit.DefaultGlobalBucket
}

func main() {
	state.Setup()

	migrations.Migrate(state.Context, state.Pool)

	notifications.Setup()

	docs.AddSecuritySchema("user", "Authorization", "Requires a user token prefixed with `User `")
	docs.AddSecuritySchema("bot", "Authorization", "Requires a bot token prefixed with `Bot `")

	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer,
		middleware.RealIP,
		middleware.CleanPath,
		corsMiddleware,
		zapchi.Logger(state.Logger, "api"),
		middleware.Timeout(30*time.Second),
		ratelimit.Middleware(bucketFor),
	)

	routers := []api.APIRouter{
		// Use same order as routes folder
		bots.Router{},
		list.Router{},
		partners.Router{},
		staff.Router{},
		users.Router{},
	}

	for _, router := range routers {
		name, desc := router.Tag()
		if name != "" {
			docs.AddTag(name, desc)
			api.CurrentTag = name
		} else {
			panic("Router tag name cannot be empty")
		}

		router.Routes(r)
	}

	r.Get("/openapi", func(w http.ResponseWriter, r *http.Request) {
		w.Write(openapi)
	})

	// Load openapi here to avoid large marshalling in every request
	var err error
	openapi, err = json.Marshal(docs.GetSchema())

	if err != nil {
		panic(err)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(constants.NotFoundPage))
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(constants.MethodNotAllowed))
	})

	state.Logger.Info("Listening on ", state.Config.Meta.Port.Parse())

	err = http.ListenAndServe(state.Config.Meta.Port.Parse(), r)

	if err != nil {
		state.Logger.Fatal(err)
	}
}
