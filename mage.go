//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput                 = "gen"
	jetBotOutput              = "bot/gen"
	jetAuthOutput             = "auth/gen"
	sqliteRatingsFileLocation = "rating.sqlite"
	sqliteBotFileLocation     = "bot.sqlite"
	sqliteAuthFileLocation    = "auth.sqlite"
	serverBin                 = "./bin/server"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

const (
	testServerConfigPath = "test_configs/server.toml"
	testAuthConfigPath   = "test_configs/auth.toml"
	testBotConfigPath    = "test_configs/bot.toml"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "cmd/main.go")
}

// Run starts the server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

// GenJet regenerates go-jet models from the sqlite files
func GenJet() error {
	mg.Deps(buildJetTool)
	if err := sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteRatingsFileLocation, "-path", jetOutput); err != nil {
		return err
	}
	if err := sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteAuthFileLocation, "-path", jetAuthOutput); err != nil {
		return err
	}
	if err := sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteBotFileLocation, "-path", jetBotOutput); err != nil {
		return err
	}
	return nil
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

// Test runs unit tests
func Test() error {
	return sh.Run("go", "test", "./...")
}

// AutoTest runs the browser test suite against a freshly built server
func AutoTest() error {
	mg.Deps(Build)
	if err := os.Chdir("tests"); err != nil {
		return err
	}
	return sh.Run(
		"go", "test", "-v",
		"-server-config", testServerConfigPath,
		"-auth-config", testAuthConfigPath,
		"-bot-config", testBotConfigPath,
		"./...",
	)
}

// Lint runs golangci-lint
func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
