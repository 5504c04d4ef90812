package persistence

import (
	"context"
	"fmt"
	"soilgate/internal/common"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoConnectionOpts struct {
	AppName             string
	Hosts               []string
	Database            string
	IsDirect            bool
	RetryInterval       time.Duration
	HealthcheckInterval time.Duration
}

type MongoAuthOpts struct {
	AuthMechanism string
	AuthSource    string
	Password      string
	Username      string
}

func (mao MongoAuthOpts) toNative() options.Credential {
	return options.Credential{
		AuthMechanism: mao.AuthMechanism,
		AuthSource:    mao.AuthSource,
		Password:      mao.Password,
		Username:      mao.Username,
	}
}

func NewMongo(
	connectionOpts MongoConnectionOpts,
	authOpts MongoAuthOpts,
	serviceLogs *chan common.ServiceLog,
) *Mongo {
	clientOptions := options.Client().
		SetHosts(connectionOpts.Hosts).
		SetDirect(connectionOpts.IsDirect).
		SetAppName(getAppName(connectionOpts.AppName)).
		SetConnectTimeout(3 * time.Second)
	// local development instances usually run without auth
	if authOpts.Username != "" {
		clientOptions.SetAuth(authOpts.toNative())
	}
	output := &Mongo{
		database: connectionOpts.Database,
		options:  clientOptions,
		supervisor: newSupervisor(
			"mongo",
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

type Mongo struct {
	client      *mongo.Client
	clientMutex sync.RWMutex
	database    string
	options     *options.ClientOptions
	supervisor  *supervisor
}

func (m *Mongo) GetClient() *mongo.Client {
	m.clientMutex.RLock()
	defer m.clientMutex.RUnlock()
	return m.client
}

// GetDatabase returns a handle on the configured database, it is only
// valid after Init succeeds
func (m *Mongo) GetDatabase() *mongo.Database {
	client := m.GetClient()
	if client == nil {
		return nil
	}
	return client.Database(m.database)
}

func (m *Mongo) GetId() string {
	return m.supervisor.id
}

func (m *Mongo) GetStatus() *Status {
	return m.supervisor.status.clone()
}

func (m *Mongo) Init() error {
	return m.supervisor.init()
}

func (m *Mongo) Shutdown() error {
	m.supervisor.halt()
	m.clientMutex.Lock()
	defer m.clientMutex.Unlock()
	if m.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo[%s]: %w", m.supervisor.id, err)
	}
	m.client = nil
	return nil
}

func (m *Mongo) connect() error {
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancelConnect()
	client, err := mongo.Connect(connectCtx, m.options)
	if err != nil {
		m.supervisor.status.set(StatusCodeConnectError, fmt.Errorf("failed to create mongo client: %w", err))
		return m.supervisor.status.GetError()
	}
	// mongo.Connect does no I/O so the parameters are only verified here
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		m.supervisor.status.set(StatusCodeConnectError, fmt.Errorf("failed to reach mongo: %w", err))
		return m.supervisor.status.GetError()
	}

	m.clientMutex.Lock()
	previous := m.client
	m.client = client
	m.clientMutex.Unlock()
	if previous != nil {
		previous.Disconnect(context.Background())
	}
	m.supervisor.status.set(StatusCodeOk, nil)
	return nil
}

func (m *Mongo) ping() error {
	client := m.GetClient()
	if client == nil {
		return fmt.Errorf("failed to ping mongo, there is no connection")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}
