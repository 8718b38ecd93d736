package service

type Config struct {
	// Driver selects the auth backend, "sqlite" or "postgres".
	Driver         string        `toml:"driver"`
	SqliteFile     string        `toml:"sqlite_file"`
	Token          string        `toml:"token"`
	Expiration     string        `toml:"expiration"`
	RootPassword   string        `toml:"root_password"`
	PasswordPepper string        `toml:"password_pepper"`
	Roles          []string      `toml:"roles"`
	Rules          []Rule        `toml:"rules"`
	Storage        StorageConfig `toml:"db"`
}

type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
	Order  int      `toml:"order"`
}

type StorageConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	DBName   string `toml:"dbname"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}
