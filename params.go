package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/scooter-qa/scooter-contract-tests/framework"
	"github.com/scooter-qa/scooter-contract-tests/scootertests"
)

const (
	defaultAPIURL = "https://qa-scooter.praktikum-services.ru/"
	apiURLEnvVar  = "SCOOTER_API_URL"
	envFile       = ".env"
)

// loadEnvFile adds the variables in filename to the environment without overriding any that are
// already set. A missing file is not an error.
func loadEnvFile(filename string) error {
	if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

type commandParams struct {
	apiURL   string
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
	mock     bool
	noColor  bool
	contract scootertests.Contract
}

// Read parses the command line. getenv supplies environment variables, which only change
// defaults: a flag always wins.
func (c *commandParams) Read(args []string, getenv func(string) string) error {
	defaultURL := defaultAPIURL
	if v := getenv(apiURLEnvVar); v != "" {
		defaultURL = v
	}
	c.contract = scootertests.DefaultContract()

	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	fs.StringVar(&c.apiURL, "url", defaultURL, "root URL of the scooter API (env "+apiURLEnvVar+")")
	fs.Var(&c.filters.MustMatch, "run", `pattern(s) to select tests to run, levels separated by "/"`)
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.mock, "mock", false, "run against a built-in mock of the API instead of --url")
	fs.IntVar(&c.contract.InvalidCredentialsStatus, "invalid-credentials-status",
		c.contract.InvalidCredentialsStatus, "expected status of a login with wrong credentials (0 skips those checks)")
	fs.StringVar(&c.contract.InvalidCredentialsMessage, "invalid-credentials-message",
		c.contract.InvalidCredentialsMessage, "expected message of a login with wrong credentials")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if c.mock {
		return nil
	}
	return validateAPIURL(c.apiURL)
}

func validateAPIURL(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid --url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid --url %q: must be an absolute http or https URL", value)
	}
	return nil
}

// rerunCommand returns a command line that runs only the given tests with otherwise the same
// parameters.
func rerunCommand(program string, c commandParams, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	if c.mock {
		b.add("--mock")
	} else {
		b.add("--url", c.apiURL)
	}
	defaults := scootertests.DefaultContract()
	if c.contract.InvalidCredentialsStatus != defaults.InvalidCredentialsStatus {
		b.add("--invalid-credentials-status", strconv.Itoa(c.contract.InvalidCredentialsStatus))
	}
	if c.contract.InvalidCredentialsMessage != defaults.InvalidCredentialsMessage {
		b.add("--invalid-credentials-message", c.contract.InvalidCredentialsMessage)
	}
	if c.debug || c.debugAll {
		b.add("--debug")
	}
	if c.noColor {
		b.add("--no-color")
	}
	for _, pattern := range c.filters.MustNotMatch.Patterns() {
		b.add("--skip", pattern)
	}
	for _, f := range failures {
		b.add("--run", exactPathPattern(f.TestID))
	}
	return b.String()
}

func exactPathPattern(id framework.TestID) string {
	levels := make([]string, 0, len(id.Path))
	for _, name := range id.Path {
		levels = append(levels, "^"+regexp.QuoteMeta(name)+"$")
	}
	return strings.Join(levels, "/")
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
