package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis runs an embedded Redis server for the login rate limiter.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

// NewRedis starts an embedded server and returns a connected client.
func NewRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return &Redis{
		Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		server: server,
	}
}

// Close shuts down the client and the embedded server.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.server.Close()
}
