package config

// EnvPrefix is empty because every variable carries the LABELLE_ prefix in
// its envconfig tag explicitly.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "LABELLE_APP_ENV"
	EnvDBDSN  = "LABELLE_DB_DSN"
	EnvDBHost = "LABELLE_DB_HOST"
	EnvDBUser = "LABELLE_DB_USER"
	EnvDBName = "LABELLE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
