package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"soilgate/internal/common"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
)

// mysqlInactivityDisconnect is the server error raised when an idle
// connection has been dropped
const mysqlInactivityDisconnect = 4031

type MysqlConnectionOpts struct {
	AppName             string
	Host                string
	Database            string
	RetryInterval       time.Duration
	HealthcheckInterval time.Duration
}

type MysqlAuthOpts struct {
	Password string
	Username string
}

func NewMysql(
	connectionOpts MysqlConnectionOpts,
	authOpts MysqlAuthOpts,
	serviceLogs *chan common.ServiceLog,
) *Mysql {
	config := mysql.NewConfig()
	config.User = authOpts.Username
	config.Passwd = authOpts.Password
	config.Net = "tcp"
	config.Addr = connectionOpts.Host
	config.DBName = connectionOpts.Database
	config.AllowNativePasswords = true
	config.ParseTime = true
	config.MultiStatements = true

	output := &Mysql{
		options: config,
		supervisor: newSupervisor(
			"mysql",
			getAppName(connectionOpts.AppName),
			connectionOpts.HealthcheckInterval,
			connectionOpts.RetryInterval,
			getServiceLogs(serviceLogs),
		),
	}
	output.supervisor.connect = output.connect
	output.supervisor.ping = output.ping
	return output
}

type Mysql struct {
	client      *sql.DB
	clientMutex sync.RWMutex
	options     *mysql.Config
	supervisor  *supervisor
}

func (m *Mysql) GetClient() *sql.DB {
	m.clientMutex.RLock()
	defer m.clientMutex.RUnlock()
	return m.client
}

func (m *Mysql) GetId() string {
	return m.supervisor.id
}

func (m *Mysql) GetStatus() *Status {
	return m.supervisor.status.clone()
}

func (m *Mysql) Init() error {
	return m.supervisor.init()
}

func (m *Mysql) Shutdown() error {
	m.supervisor.halt()
	m.clientMutex.Lock()
	defer m.clientMutex.Unlock()
	if m.client == nil {
		return nil
	}
	if err := m.client.Close(); err != nil {
		return fmt.Errorf("failed to close mysql[%s] connection: %w", m.supervisor.id, err)
	}
	m.client = nil
	return nil
}

// connect only opens the pool once, database/sql redials dropped
// connections by itself
func (m *Mysql) connect() error {
	m.clientMutex.Lock()
	defer m.clientMutex.Unlock()
	if m.client != nil {
		m.supervisor.status.set(StatusCodeOk, nil)
		return nil
	}
	client, err := sql.Open("mysql", m.options.FormatDSN())
	if err != nil {
		m.supervisor.status.set(StatusCodeConnectError, fmt.Errorf("mysql[%s] failed to connect: %w", m.supervisor.id, err))
		return m.supervisor.status.GetError()
	}
	m.client = client
	m.supervisor.status.set(StatusCodeOk, nil)
	return nil
}

func (m *Mysql) ping() error {
	client := m.GetClient()
	if client == nil {
		return fmt.Errorf("failed to ping mysql, there is no connection")
	}
	if _, err := client.Exec("SELECT 1"); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlInactivityDisconnect {
			return fmt.Errorf("mysql[%s] caught inactivity disconnect: %w", m.supervisor.id, err)
		}
		return err
	}
	return nil
}
