package config

const PostgresHostKey = "POSTGRES_HOST"
const PostgresPortKey = "POSTGRES_PORT"
const PostgresUserKey = "POSTGRES_USER"
const PostgresPasswordKey = "POSTGRES_PASSWORD"
const PostgresRecordsDatabaseKey = "POSTGRES_RECORDS_DATABASE"

type PostgresDBEnvironmentSettings struct {
	Host            EnvironmentSetting
	Port            EnvironmentSetting
	User            EnvironmentSetting
	Password        EnvironmentSetting
	RecordsDatabase EnvironmentSetting
}

var DefaultPostgresPort = "5432"

// DeployedPostgresDBEnvironmentSettings are the settings used for actual
// deployments (as opposed to tests). The only default value is the Postgres
// port 5432. No password default: deployed Lambdas go through the RDS proxy
// with IAM auth instead.
var DeployedPostgresDBEnvironmentSettings = PostgresDBEnvironmentSettings{
	Host:            NewEnvironmentSetting(PostgresHostKey),
	Port:            NewEnvironmentSettingWithDefault(PostgresPortKey, DefaultPostgresPort),
	User:            NewEnvironmentSetting(PostgresUserKey),
	Password:        NewEnvironmentSetting(PostgresPasswordKey),
	RecordsDatabase: NewEnvironmentSetting(PostgresRecordsDatabaseKey),
}
