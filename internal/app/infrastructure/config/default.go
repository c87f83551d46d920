package config

import "github.com/spf13/viper"

const (
	BackendDisabled = ""
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendMySQL    = "mysql"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("proxy.listen_addr", ":8080")
	v.SetDefault("proxy.auth_key", "")
	v.SetDefault("proxy.upstream", "https://api.telegram.org")
	v.SetDefault("proxy.gin_mode", "release")
	v.SetDefault("proxy.admin_user", "admin")
	v.SetDefault("proxy.admin_password", "")

	v.SetDefault("autodelete.keywords", "")
	v.SetDefault("autodelete.delay", "15m")
	v.SetDefault("autodelete.retention", "24h")
	v.SetDefault("autodelete.sweep_interval", "1m")
	v.SetDefault("autodelete.delete_rps", 20.0)

	v.SetDefault("store.backend", BackendDisabled)
	v.SetDefault("store.sqlite_path", "data/tasks.db")
	v.SetDefault("store.mysql.host", "127.0.0.1")
	v.SetDefault("store.mysql.port", 3306)
	v.SetDefault("store.mysql.username", "")
	v.SetDefault("store.mysql.password", "")
	v.SetDefault("store.mysql.dbname", "tgproxy")
	v.SetDefault("store.mysql.charset", "utf8mb4")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.directory", "logs")
	v.SetDefault("logger.rotation.max_size", 64)
	v.SetDefault("logger.rotation.max_backups", 32)
	v.SetDefault("logger.rotation.max_age", 30)
	v.SetDefault("logger.rotation.compress", true)
}
