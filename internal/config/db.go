package config

// DBEngine selects the gorm driver.
type DBEngine string

const (
	// DBEngineMySQL uses the MySQL driver.
	DBEngineMySQL DBEngine = "mysql"
	// DBEnginePostgres uses the PostgreSQL driver.
	DBEnginePostgres DBEngine = "postgres"
	// DBEngineSQLite uses the embedded SQLite driver (dev and small installs).
	DBEngineSQLite DBEngine = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	Engine   DBEngine
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}
