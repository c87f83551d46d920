package config

import "time"

type Config struct {
	Proxy      Proxy      `mapstructure:"proxy"`
	AutoDelete AutoDelete `mapstructure:"autodelete"`
	Store      Store      `mapstructure:"store"`
	Logger     Logger     `mapstructure:"logger"`
}

type Proxy struct {
	ListenAddr    string `mapstructure:"listen_addr"`
	AuthKey       string `mapstructure:"auth_key"`
	Upstream      string `mapstructure:"upstream"`
	GinMode       string `mapstructure:"gin_mode"`
	AdminUser     string `mapstructure:"admin_user"`
	AdminPassword string `mapstructure:"admin_password"`
}

type AutoDelete struct {
	// Keywords come in as a comma-separated string (environment surface)
	// or a list (YAML); validate() normalizes both into the final list.
	Keywords      []string      `mapstructure:"keywords"`
	Delay         time.Duration `mapstructure:"delay"`
	Retention     time.Duration `mapstructure:"retention"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	DeleteRPS     float64       `mapstructure:"delete_rps"`
}

type Store struct {
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlite_path"`
	MySQL      MySQL  `mapstructure:"mysql"`
}

type MySQL struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

type Logger struct {
	Level     string   `mapstructure:"level"`
	Directory string   `mapstructure:"directory"`
	Rotation  Rotation `mapstructure:"rotation"`
}

type Rotation struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

// AutoDeleteEnabled reports whether a task store backend is configured.
// Without one the whole auto-delete subsystem stays off.
func (c *Config) AutoDeleteEnabled() bool {
	return c.Store.Backend != ""
}
