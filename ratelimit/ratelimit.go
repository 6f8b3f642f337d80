package ratelimit

import (
	"crypto/sha512"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"litten/state"
)

// Represents a moderated bucket typically used on hot endpoints like vote
// casting. This is also the concept used in so-called global ratelimits.
type ModeratedBucket struct {
	BucketName string

	// Internally set, dont change
	Global bool

	Requests int
	Time     time.Duration
}

// Default global ratelimit handler
var DefaultGlobalBucket = ModeratedBucket{BucketName: "global", Global: true, Requests: 500, Time: 2 * time.Minute}

func bucketHandle(bucket ModeratedBucket, id string, w http.ResponseWriter, r *http.Request) bool {
	rlKey := "rl:" + id + "-" + bucket.BucketName

	v := state.Redis.Get(r.Context(), rlKey).Val()

	if v == "" {
		v = "0"

		err := state.Redis.Set(state.Context, rlKey, "0", bucket.Time).Err()

		if err != nil {
			state.Logger.Error(err)
			return false
		}
	}

	err := state.Redis.Incr(state.Context, rlKey).Err()

	if err != nil {
		state.Logger.Error(err)
		return false
	}

	vInt, err := strconv.Atoi(v)

	if err != nil {
		state.Logger.Error(err)
		return false
	}

	if vInt < 0 {
		state.Redis.Expire(state.Context, rlKey, 1*time.Second)
		vInt = 0
	}

	if vInt > bucket.Requests {
		retryAfter := state.Redis.TTL(state.Context, rlKey).Val()

		if bucket.Global {
			w.Header().Set("X-Global-Ratelimit", "true")
		}

		w.Header().Set("Retry-After", strconv.FormatFloat(retryAfter.Seconds(), 'g', -1, 64))

		w.WriteHeader(http.StatusTooManyRequests)

		// Set ratelimit to expire in more time if not global
		if !bucket.Global {
			state.Redis.Expire(state.Context, rlKey, retryAfter+2*time.Second)
		}

		w.Write([]byte("{\"message\":\"You're being rate limited!\",\"error\":true}"))

		return false
	}

	if bucket.Global {
		w.Header().Set("X-Ratelimit-Global-Req-Made", strconv.Itoa(vInt))
	} else {
		w.Header().Set("X-Ratelimit-Req-Made", strconv.Itoa(vInt))
	}
	return true
}

// Ratelimit applies the given bucket to the request, keyed by the callers
// API token when present and a hashed remote IP otherwise
func Ratelimit(bucket ModeratedBucket, w http.ResponseWriter, r *http.Request) bool {
	var id string

	auth := r.Header.Get("Authorization")

	if auth != "" {
		// Hash the token, raw tokens must never end up as redis keys
		hasher := sha512.New()
		hasher.Write([]byte(auth))
		id = fmt.Sprintf("%x", hasher.Sum(nil))
	} else {
		remoteIp := strings.Split(strings.ReplaceAll(r.Header.Get("X-Forwarded-For"), " ", ""), ",")

		if remoteIp[0] == "" {
			remoteIp[0] = r.RemoteAddr
		}

		// For user privacy, hash the remote ip
		hasher := sha512.New()
		hasher.Write([]byte(remoteIp[0]))
		id = fmt.Sprintf("%x", hasher.Sum(nil))
	}

	return bucketHandle(bucket, id, w, r)
}

// Middleware applies a bucket chosen per request
func Middleware(selector func(r *http.Request) ModeratedBucket) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ok := Ratelimit(selector(r), w, r); !ok {
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
