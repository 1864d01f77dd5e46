package util

const (
	StorageMongo  = "mongo"
	StorageMySQL  = "mysql"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

const (
	APIPrefix       = "/api/v1"
	RequestIDHeader = "X-Request-ID"
	DefaultPort     = "8080"
)
