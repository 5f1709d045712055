// main.go
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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/localnerve/propiq/internal/testutil"
)

func main() {
	var showHelp, withAuthorizer, withApp bool
	flag.BoolVar(&showHelp, "h", false, "show help")

	var envFilename, dbType string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.StringVar(&dbType, "db", "mariadb", "database type: mariadb or postgres")
	flag.BoolVar(&withAuthorizer, "authorizer", false, "also run the Authorizer service")
	flag.BoolVar(&withApp, "app", true, "also run the propiq service")
	flag.Parse()

	usage := `
Run the propiq testcontainers with the environment variables from the .env file.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH] [-db mariadb|postgres] [-authorizer] [-app=false]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env -db postgres
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan *testutil.Stack, 1)
	go func() {
		stack, err := testutil.StartStack(ctx, nil, testutil.StackOptions{
			DBType:     dbType,
			Authorizer: withAuthorizer,
			App:        withApp,
		})
		if err != nil {
			log.Fatalf("Failed to create test containers: %v\n", err)
		}
		cfg := stack.Config
		log.Printf("DB_TYPE=%s DB_HOST=%s DB_PORT=%s DB_DATABASE=%s DB_USER=%s", cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser)
		if stack.AuthorizerURL != "" {
			log.Printf("AUTHZ_URL=%s AUTHZ_CLIENT_ID=%s", stack.AuthorizerURL, cfg.AuthzClientID)
		}
		log.Println("Test containers running, interrupt to stop")
		started <- stack
	}()

	var stack *testutil.Stack
	select {
	case stack = <-started:
		sig := <-sigs
		log.Printf("\nReceived signal: %v, terminating test containers...\n", sig)
	case sig := <-sigs:
		log.Printf("\nReceived signal: %v before startup finished\n", sig)
		cancel()
		stack = <-started
	}
	if stack != nil {
		stack.Terminate(nil)
	}
}
