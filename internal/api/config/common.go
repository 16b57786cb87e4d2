package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Settings SettingsConfig `mapstructure:"settings"`
	Posts    PostsConfig    `mapstructure:"posts"`
	Cron     CronConfig     `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	Mode            string `mapstructure:"mode"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver      string `mapstructure:"driver"` // mysql | postgres
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// JWTConfig Token 签发配置
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Issuer     string `mapstructure:"issuer"`
	Expiration int    `mapstructure:"expiration"` // 小时
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Logstash string `mapstructure:"logstash"`
	Index    string `mapstructure:"index"`
	Token    string `mapstructure:"token"`
}

type KafkaConfig struct {
	Enable     bool             `mapstructure:"enable"`
	Brokers    []string         `mapstructure:"brokers"`
	Sasl       SaslConfig       `mapstructure:"sasl"`
	Consumer   ConsumerConfig   `mapstructure:"consumer"`
	PostEvents PostEventsConfig `mapstructure:"post_events"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type PostEventsConfig struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// SettingsConfig 运行时配置存储
type SettingsConfig struct {
	Backend  string         `mapstructure:"backend"` // memory | redis
	Key      string         `mapstructure:"key"`
	Defaults map[string]any `mapstructure:"defaults"`
}

// PostsConfig 帖子类型扩展
type PostsConfig struct {
	ExtraTypes []PostTypeConfig `mapstructure:"extra_types"`
}

type PostTypeConfig struct {
	Name     string   `mapstructure:"name"`
	Required []string `mapstructure:"required"`
}

type CronConfig struct {
	PostStats string `mapstructure:"post_stats"`
}
