package broker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const jobChannel = "jobs:newsletter"

// RedisJobQueue implements JobQueue over Redis pub/sub
type RedisJobQueue struct {
	client *redis.Client
	pubsub *redis.PubSub
	ctx    context.Context
}

func NewRedisJobQueue(redisURL string) (*RedisJobQueue, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisJobQueue{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisJobQueue) Publish(job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	return r.client.Publish(r.ctx, jobChannel, data).Err()
}

func (r *RedisJobQueue) Subscribe() (<-chan Job, error) {
	r.pubsub = r.client.Subscribe(r.ctx, jobChannel)

	jobChan := make(chan Job, 16)

	go func() {
		defer close(jobChan)

		for redisMsg := range r.pubsub.Channel() {
			var job Job

			if err := json.Unmarshal([]byte(redisMsg.Payload), &job); err != nil {
				continue
			}

			jobChan <- job
		}
	}()

	return jobChan, nil
}

func (r *RedisJobQueue) Close() error {
	if r.pubsub != nil {
		r.pubsub.Close()
	}
	return r.client.Close()
}
