package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	cacheDestinationID = "hotels:dest:%s"
	destinationTTL     = 24 * time.Hour
)

// DestinationCache remembers the upstream hotel destination id resolved for
// a free-text query, saving one upstream call per repeated search.
type DestinationCache struct {
	cli    *redis.Client
	logger *logrus.Logger
	Tracer trace.Tracer
}

func New(addr string, logger *logrus.Logger, tracer trace.Tracer) *DestinationCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &DestinationCache{
		cli:    client,
		logger: logger,
		Tracer: tracer,
	}
}

func (dc *DestinationCache) Ping() error {
	val, err := dc.cli.Ping().Result()
	if err != nil {
		return err
	}
	dc.logger.Debugf("redis ping: %s", val)
	return nil
}

// GetDestinationID returns ok=false on a miss. Redis errors are logged and
// treated as misses so search keeps working without the cache.
func (dc *DestinationCache) GetDestinationID(ctx context.Context, query string) (string, bool) {
	ctx, span := dc.Tracer.Start(ctx, "DestinationCache.GetDestinationID")
	defer span.End()

	val, err := dc.cli.WithContext(ctx).Get(constructDestinationKey(query)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		dc.logger.WithError(err).Warn("destination cache read failed")
		return "", false
	}
	dc.logger.WithField("query", query).Debug("destination cache hit")
	return val, true
}

func (dc *DestinationCache) PutDestinationID(ctx context.Context, query, destID string) {
	ctx, span := dc.Tracer.Start(ctx, "DestinationCache.PutDestinationID")
	defer span.End()

	err := dc.cli.WithContext(ctx).Set(constructDestinationKey(query), destID, destinationTTL).Err()
	if err != nil {
		span.SetStatus(codes.Error, "Error setting destination in Redis: "+err.Error())
		dc.logger.WithError(err).Warn("destination cache write failed")
	}
}

func (dc *DestinationCache) Close() error {
	return dc.cli.Close()
}

func constructDestinationKey(query string) string {
	return fmt.Sprintf(cacheDestinationID, strings.ToLower(strings.TrimSpace(query)))
}
