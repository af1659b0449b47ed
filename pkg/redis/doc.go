// Package redis connects to Redis with retries and provides the helpers the
// portal runs on it: a readiness probe and SET NX based claims used to
// reject duplicate submissions across instances.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	claims := redis.NewClaimer(client, cfg.KeyPrefix)
//	first, err := claims.Claim(ctx, fingerprint, 10*time.Minute)
//
// Redis is optional: Config.Enabled is false when REDIS_URL is unset.
package redis
