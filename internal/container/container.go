package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/imnahmed17/user-order-api/config"
	"github.com/imnahmed17/user-order-api/pkg/validation"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoClient *mongo.Client
	userColl    *mongo.Collection
	redisClient *redis.Client
	val         *validation.Validator
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetMongo(c *mongo.Client) { mongoClient = c }
func GetMongo() *mongo.Client  { return mongoClient }

func SetUserCollection(c *mongo.Collection) { userColl = c }
func GetUserCollection() *mongo.Collection  { return userColl }

func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetValidator(v *validation.Validator) { val = v }
func GetValidator() *validation.Validator {
	if val != nil {
		return val
	}
	return validation.New()
}
