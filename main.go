package main

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"

	"github.com/scooter-qa/scooter-contract-tests/client"
	"github.com/scooter-qa/scooter-contract-tests/datagen"
	"github.com/scooter-qa/scooter-contract-tests/framework"
	"github.com/scooter-qa/scooter-contract-tests/mockapi"
	"github.com/scooter-qa/scooter-contract-tests/scootertests"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	envErr := loadEnvFile(envFile)

	var params commandParams
	if err := params.Read(args, os.Getenv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n", err)
		return 1
	}
	if params.noColor {
		color.NoColor = true
	}

	loggers := ldlog.NewDefaultLoggers()
	loggers.SetBaseLogger(log.New(os.Stdout, "", log.LstdFlags))
	loggers.SetMinLevel(ldlog.Info)
	if params.debugAll {
		loggers.SetMinLevel(ldlog.Debug)
	}
	if envErr != nil {
		loggers.Warnf("Could not load %s: %s", envFile, envErr)
	}

	apiURL := params.apiURL
	if params.mock {
		mockURL, stop, err := startMockAPI(loggers)
		if err != nil {
			loggers.Errorf("Could not start mock API: %s", err)
			return 1
		}
		defer stop()
		apiURL = mockURL
	}
	u, err := url.Parse(apiURL)
	if err != nil {
		loggers.Errorf("Invalid API URL: %s", err)
		return 1
	}
	loggers.Infof("Testing scooter API at %s", apiURL)

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := scootertests.RunTestSuite(
		client.NewRequestSpec(u, nil),
		datagen.Default(),
		params.contract,
		params.filters.AsFilter,
		testLogger,
	)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed tests:")
		fmt.Println(rerunCommand(args[0], params, results.Failures))
		return 1
	}
	return 0
}

func startMockAPI(loggers ldlog.Loggers) (string, func(), error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, err
	}
	server := &http.Server{
		Handler:           mockapi.New(loggers),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggers.Errorf("Mock API stopped: %s", err)
		}
	}()
	baseURL := "http://" + listener.Addr().String()
	loggers.Infof("Mock API listening on %s, metrics at %s", baseURL, baseURL+mockapi.MetricsPath)
	return baseURL + "/", func() { _ = server.Close() }, nil
}
