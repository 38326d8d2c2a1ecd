package service

type Config struct {
	SqliteFile     string `toml:"sqlite_file"`
	Token          string `toml:"token"`
	Expiration     string `toml:"expiration"`
	RootPassword   string `toml:"root_password"`
	PasswordPepper string `toml:"password_pepper"`
	Rules          []Rule `toml:"rules"`
}

// Rule allows roles to reach paths matching a regexp. Rules are
// evaluated in file order, first match wins.
type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
}
