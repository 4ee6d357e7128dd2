/*
Copyright 2024 MoneyAPI Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moneyapi/moneyapi"
	"github.com/moneyapi/moneyapi/config"
	"github.com/moneyapi/moneyapi/database"
)

// MoneyAPICLI represents the CLI application, encapsulating the root Cobra command.
type MoneyAPICLI struct {
	cmd *cobra.Command
}

// moneyapiInstance holds the service instance and its configuration, shared by
// every subcommand.
type moneyapiInstance struct {
	service *moneyapi.MoneyAPI
	cnf     *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun sets up the configuration and initializes the service before running any command.
func preRun(app *moneyapiInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig("moneyapi.json")
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newService, err := setupService(cnf)
		if err != nil {
			log.Fatal(err)
		}

		app.service = newService
		app.cnf = cnf

		return nil
	}
}

// setupService connects to the data source and wires up the service on top of it.
func setupService(cfg *config.Configuration) (*moneyapi.MoneyAPI, error) {
	db, err := database.NewDataSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("error getting datasource: %v", err)
	}

	newService, err := moneyapi.NewMoneyAPI(db)
	if err != nil {
		return nil, fmt.Errorf("error creating service: %v", err)
	}
	return newService, nil
}

// NewCLI creates the command-line interface for the application.
func NewCLI() *MoneyAPICLI {
	var configFile string
	m := &moneyapiInstance{}

	var rootCmd = &cobra.Command{
		Use:   "moneyapi",
		Short: "Record keeper for money transfer intents",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./moneyapi.json", "Configuration file for moneyapi")

	rootCmd.PersistentPreRunE = preRun(m)

	rootCmd.AddCommand(serverCommands(m))
	rootCmd.AddCommand(apiKeyCommands(m))

	return &MoneyAPICLI{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w MoneyAPICLI) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
