// containers.go
//
// PropIQ, a property, lease and tenant management service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of propiq.
// propiq is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propiq is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propiq.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/localnerve/propiq/data"
	"github.com/localnerve/propiq/internal/config"
)

// Service database and account the provisioning SQL grants to
const (
	ServiceDatabase = "propiq"
	ServiceUser     = "propiq"
	dbNetworkAlias  = "db"
	authzAlias      = "authorizer"
	appImage        = "propiq-test:latest"
)

// StackOptions selects what StartStack runs next to the database
type StackOptions struct {
	// DBType is mariadb, mysql or postgres
	DBType     string
	Authorizer bool
	App        bool
}

// Stack is a running set of test containers
type Stack struct {
	Network       *testcontainers.DockerNetwork
	DB            testcontainers.Container
	Authorizer    testcontainers.Container
	App           testcontainers.Container
	AppBuilder    testcontainers.Container
	Config        *config.Config
	AuthorizerURL string
	AppURL        string
}

// Terminate stops every container in reverse start order. t may be nil.
func (s *Stack) Terminate(t *testing.T) {
	ctx := context.Background()
	for _, c := range []struct {
		name      string
		container testcontainers.Container
	}{
		{"app", s.App},
		{"app builder", s.AppBuilder},
		{"authorizer", s.Authorizer},
		{"database", s.DB},
	} {
		if c.container == nil {
			continue
		}
		if err := c.container.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate %s: %v", c.name, err)
		}
	}
	if s.Network != nil {
		if err := s.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// StartStack starts a provisioned database and, on request, the Authorizer
// and the service itself. The returned Config reaches the database from the host.
func StartStack(ctx context.Context, t *testing.T, opts StackOptions) (*Stack, error) {
	stack := &Stack{}
	fail := func(err error, msg string) (*Stack, error) {
		stack.Terminate(t)
		return nil, fmt.Errorf("%s: %w", msg, err)
	}

	nw, err := network.New(ctx)
	if err != nil {
		return fail(err, "failed to create network")
	}
	stack.Network = nw

	dbType := opts.DBType
	if dbType == "" {
		dbType = "mariadb"
	}
	rootPassword := envOr("DB_ROOT_PASSWORD", "root-secret")
	servicePassword := envOr("DB_PASSWORD", "propiq-secret")

	dbPort := nat.Port("3306/tcp")
	dbImage := envOr("DB_IMAGE", "mariadb:11.4")
	dbEnv := map[string]string{
		"MYSQL_ROOT_PASSWORD": rootPassword,
		"MYSQL_DATABASE":      "authorizer",
	}
	if dbType == "postgres" {
		dbPort = "5432/tcp"
		dbImage = envOr("DB_IMAGE", "postgres:17-alpine")
		dbEnv = map[string]string{
			"POSTGRES_USER":     ServiceUser,
			"POSTGRES_PASSWORD": servicePassword,
			"POSTGRES_DB":       ServiceDatabase,
		}
	}

	db, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage,
			ExposedPorts: []string{string(dbPort)},
			Env:          dbEnv,
			WaitingFor:   wait.ForListeningPort(dbPort).WithStartupTimeout(90 * time.Second),
			Networks:     []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {dbNetworkAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		return fail(err, "failed to start database")
	}
	stack.DB = db

	host, err := db.Host(ctx)
	if err != nil {
		return fail(err, "failed to read database host")
	}
	mapped, err := db.MappedPort(ctx, dbPort)
	if err != nil {
		return fail(err, "failed to read database port")
	}

	switch dbType {
	case "postgres":
		err = provisionPostgres(host, mapped.Port(), servicePassword)
	default:
		err = provisionMariaDB(host, mapped.Port(), rootPassword, servicePassword)
	}
	if err != nil {
		return fail(err, "failed to provision database")
	}

	stack.Config = &config.Config{
		Port:              envOr("PORT", "3000"),
		DBType:            dbType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        ServiceDatabase,
		DBUser:            ServiceUser,
		DBPassword:        servicePassword,
		DBConnectionLimit: 5,
		AuthProvider:      config.AuthProviderLocal,
		SessionCookie:     "propiq_session",
		SessionTTL:        time.Hour,
		DefaultCountry:    "Australia",
	}

	if opts.Authorizer {
		if err := startAuthorizer(ctx, stack, dbType, rootPassword); err != nil {
			return fail(err, "failed to start Authorizer")
		}
	}
	if opts.App {
		if err := startApp(ctx, t, stack, dbPort.Port(), opts.Authorizer); err != nil {
			return fail(err, "failed to start app")
		}
	}

	return stack, nil
}

func startAuthorizer(ctx context.Context, stack *Stack, dbType, rootPassword string) error {
	port := nat.Port(envOr("AUTHZ_PORT", "9011") + "/tcp")
	clientID := envOr("AUTHZ_CLIENT_ID", uuid.NewString())

	dbURL := fmt.Sprintf("root:%s@tcp(%s:3306)/authorizer", rootPassword, dbNetworkAlias)
	if dbType == "postgres" {
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:5432/%s", ServiceUser, stack.Config.DBPassword, dbNetworkAlias, ServiceDatabase)
	}
	logLevel := "info"
	if os.Getenv("DEBUG_CONTAINER") == "true" {
		logLevel = "debug"
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("AUTHZ_IMAGE", "lakhansamani/authorizer:latest"),
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     clientID,
				"PORT":          port.Port(),
				"DATABASE_TYPE": dbType,
				"DATABASE_NAME": "authorizer",
				"DATABASE_URL":  dbURL,
				"ADMIN_SECRET":  envOr("AUTHZ_ADMIN_SECRET", "admin-secret"),
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
				"LOG_LEVEL":     logLevel,
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(30 * time.Second),
			Networks:   []string{stack.Network.Name},
			NetworkAliases: map[string][]string{
				stack.Network.Name: {authzAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		return err
	}
	stack.Authorizer = container

	host, _ := container.Host(ctx)
	mapped, _ := container.MappedPort(ctx, port)
	stack.AuthorizerURL = fmt.Sprintf("http://%s:%s", host, mapped.Port())
	stack.Config.AuthProvider = config.AuthProviderAuthorizer
	stack.Config.AuthzURL = fmt.Sprintf("http://%s:%s", authzAlias, port.Port())
	stack.Config.AuthzClientID = clientID
	return nil
}

// startApp runs the service image, building it from the Dockerfile when it is not already present
func startApp(ctx context.Context, t *testing.T, stack *Stack, dbPort string, withAuthorizer bool) error {
	cfg := stack.Config
	port := nat.Port(cfg.Port + "/tcp")

	env := map[string]string{
		"PORT":            cfg.Port,
		"DB_TYPE":         cfg.DBType,
		"DB_HOST":         dbNetworkAlias,
		"DB_PORT":         dbPort,
		"DB_DATABASE":     cfg.DBDatabase,
		"DB_USER":         cfg.DBUser,
		"DB_PASSWORD":     cfg.DBPassword,
		"AUTH_PROVIDER":   config.AuthProviderLocal,
		"SESSION_COOKIE":  cfg.SessionCookie,
		"DEFAULT_COUNTRY": cfg.DefaultCountry,
	}
	if withAuthorizer {
		env["AUTH_PROVIDER"] = config.AuthProviderAuthorizer
		env["AUTHZ_URL"] = cfg.AuthzURL
		env["AUTHZ_CLIENT_ID"] = cfg.AuthzClientID
	}

	request := testcontainers.ContainerRequest{
		ExposedPorts: []string{string(port)},
		Env:          env,
		WaitingFor:   wait.ForHTTP("/metrics").WithPort(port).WithStartupTimeout(60 * time.Second),
		Networks:     []string{stack.Network.Name},
	}

	exists, err := imageExists(ctx, appImage)
	if err != nil {
		return err
	}

	if exists {
		logMessage(t, "Image %s exists, reusing...", appImage)
		request.Image = appImage
	} else {
		sessionID := uuid.NewString()
		buildArgs := map[string]*string{"RESOURCE_REAPER_SESSION_ID": &sessionID}
		buildContext := envOr("TESTCONTAINERS_BUILD_CONTEXT", "../..")

		logMessage(t, "Image %s does not exist, building...", appImage)
		builder, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "propiq-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder"
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			return err
		}
		stack.AppBuilder = builder

		repo, tag, _ := strings.Cut(appImage, ":")
		request.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       repo,
			Tag:        tag,
			KeepImage:  true,
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	}

	app, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: request,
		Started:          true,
	})
	if err != nil {
		return err
	}
	stack.App = app

	host, _ := app.Host(ctx)
	mapped, _ := app.MappedPort(ctx, port)
	stack.AppURL = fmt.Sprintf("http://%s:%s", host, mapped.Port())
	logMessage(t, "BASE_URL=%s", stack.AppURL)
	return nil
}

func provisionMariaDB(host, port, rootPassword, servicePassword string) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", rootPassword, host, port))
	if err != nil {
		return err
	}
	defer db.Close()
	// USE in the script only holds for the connection that ran it
	db.SetMaxOpenConns(1)

	if err := waitForPing(db); err != nil {
		return fmt.Errorf("MariaDB not ready: %w", err)
	}

	setup := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", ServiceDatabase),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", ServiceUser, servicePassword),
	}
	for _, q := range setup {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, q)
		}
	}
	if err := ExecuteSQL(db, data.InitdbMariaDBTables); err != nil {
		return err
	}
	return ExecuteSQL(db, data.InitdbMariaDBPrivileges)
}

func provisionPostgres(host, port, password string) error {
	db, err := sql.Open("pgx", fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", ServiceUser, password, host, port, ServiceDatabase))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := waitForPing(db); err != nil {
		return fmt.Errorf("Postgres not ready: %w", err)
	}
	return ExecuteSQL(db, data.InitdbPostgresTables)
}

func waitForPing(db *sql.DB) error {
	var err error
	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(time.Second)
	}
	return err
}

// ExecuteSQL runs each statement of a script, ignoring -- comments outside quotes
func ExecuteSQL(db *sql.DB, script string) error {
	lines := strings.Split(script, "\n")
	for i, l := range lines {
		lines[i] = excludeComment(l)
	}

	for _, q := range strings.Split(strings.Join(lines, "\n"), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, q)
		}
	}
	return nil
}

// excludeComment strips a trailing -- comment that is not inside a quoted string
func excludeComment(line string) string {
	var quote rune
	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '-' && strings.HasPrefix(line[i:], "--"):
			return line[:i]
		}
	}
	return line
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}
	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}
	return false, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
